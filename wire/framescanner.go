package wire

import (
	"bytes"

	"github.com/goldcrest-btc/goldcrestd/util/chainhash"
)

// minFrameScanBytes is the fewest buffered bytes worth scanning. A complete
// header is MessageHeaderSize bytes; anything under this floor cannot even
// hold the magic, command and declared length, so the scanner rejects it
// cheaply before running the byte-wise magic search.
const minFrameScanBytes = 20

// Frame is one complete, checksum-validated wire unit pulled off a stream.
// It carries the command that names the payload's codec and the raw payload
// bytes. Frames are short-lived: they are handed straight to
// DecodeMessagePayload and not retained.
type Frame struct {
	Command string
	Payload []byte
}

// streamBuffer is a growable byte arena owned by a FrameScanner. The
// transport appends raw socket bytes to the tail and the scanner consumes
// validated or discarded bytes from the head. Consumption moves a read
// offset rather than reslicing storage, and the storage is compacted once
// the dead prefix outweighs the live bytes.
type streamBuffer struct {
	buf []byte
	off int
}

// append adds raw bytes to the end of the buffer.
func (b *streamBuffer) append(p []byte) {
	b.buf = append(b.buf, p...)
}

// bytes returns the unconsumed portion of the buffer. The returned slice is
// only valid until the next append or advance.
func (b *streamBuffer) bytes() []byte {
	return b.buf[b.off:]
}

// len returns the number of unconsumed bytes.
func (b *streamBuffer) len() int {
	return len(b.buf) - b.off
}

// advance consumes n leading bytes. It panics if n exceeds the unconsumed
// length since that would mean the scanner's byte accounting is broken.
func (b *streamBuffer) advance(n int) {
	if n > b.len() {
		panic("streamBuffer: advance past end of buffer")
	}
	b.off += n

	// Compact once the consumed prefix dominates the storage so the arena
	// does not grow without bound on a long-lived connection.
	if b.off > len(b.buf)/2 && b.off >= minFrameScanBytes {
		remaining := copy(b.buf, b.buf[b.off:])
		b.buf = b.buf[:remaining]
		b.off = 0
	}
}

// FrameScanner converts an accumulating, arbitrarily-fragmented byte stream
// into validated frames for a single network. The transport feeds it raw
// bytes via Append as they arrive and repeatedly calls Next; each Next call
// either consumes bytes or leaves the buffer exactly where it was, so the
// scanner is always safe to call again once more data shows up. It never
// blocks and it never fails: garbage, truncation and corruption all surface
// as a nil frame plus adjusted counters.
//
// A FrameScanner carries per-connection state and must not be shared between
// connections.
type FrameScanner struct {
	net BitcoinNet
	buf streamBuffer

	// FramesScanned is the number of valid frames returned so far.
	FramesScanned uint64

	// BytesDiscarded counts bytes dropped while resynchronizing on the
	// network magic, including whole frames dropped on checksum failure.
	BytesDiscarded uint64

	// ChecksumFailures is the number of frames dropped because their
	// payload did not hash to the declared checksum.
	ChecksumFailures uint64
}

// NewFrameScanner returns a scanner that recognizes frames belonging to the
// given network.
func NewFrameScanner(net BitcoinNet) *FrameScanner {
	return &FrameScanner{net: net}
}

// Append adds raw bytes received from the transport to the scan buffer.
func (s *FrameScanner) Append(p []byte) {
	s.buf.append(p)
}

// Buffered returns the number of bytes waiting to be scanned.
func (s *FrameScanner) Buffered() int {
	return s.buf.len()
}

// Next returns the next complete, checksum-valid frame from the buffered
// bytes, or nil when no such frame is available yet. A nil return means one
// of: not enough bytes buffered, no magic found in the unusable prefix, or a
// corrupt frame was dropped. In every case the buffer has been advanced past
// all bytes that can no longer start a valid frame, so the caller simply
// appends more data as it arrives and calls Next again.
func (s *FrameScanner) Next() *Frame {
	var magic [4]byte
	littleEndian.PutUint32(magic[:], uint32(s.net))

	for {
		data := s.buf.bytes()
		if len(data) < minFrameScanBytes {
			return nil
		}

		// Resynchronize on the network magic. Bytes preceding the
		// first occurrence are noise from a desynchronized or hostile
		// peer and are dropped. When no occurrence exists, everything
		// but the final few bytes is dropped: those bytes could still
		// complete a magic once more data arrives.
		i := bytes.Index(data, magic[:])
		if i < 0 {
			s.discard(len(data) - len(magic))
			return nil
		}
		if i > 0 {
			s.discard(i)
			data = s.buf.bytes()
		}

		// Aligned at a magic boundary. The declared payload length
		// lives at bytes 16..20 of the header.
		if len(data) < minFrameScanBytes {
			return nil
		}
		length := littleEndian.Uint32(data[16:20])

		// A declared length beyond the protocol maximum cannot be a
		// real frame. Treat this magic hit as noise and resume the
		// scan just past it.
		if length > MaxMessagePayload {
			s.discard(len(magic))
			continue
		}

		totalLen := MessageHeaderSize + int(length)
		if len(data) < totalLen {
			// The frame is still in flight. Stay parked at the
			// magic boundary until the rest shows up.
			return nil
		}

		command := string(bytes.TrimRight(data[4:16], "\x00"))
		checksum := data[20:24]
		payload := make([]byte, length)
		copy(payload, data[MessageHeaderSize:totalLen])

		if !bytes.Equal(chainhash.DoubleHashB(payload)[0:4], checksum) {
			// Corrupt frame. The whole declared extent is dropped
			// rather than re-scanned from its second byte; the
			// declared length was already bounded above, so the
			// worst a forged length costs is one extra round of
			// resynchronization.
			s.ChecksumFailures++
			s.discard(totalLen)
			return nil
		}

		s.buf.advance(totalLen)
		s.FramesScanned++
		return &Frame{Command: command, Payload: payload}
	}
}

// discard consumes n bytes that will never form part of a valid frame.
func (s *FrameScanner) discard(n int) {
	s.buf.advance(n)
	s.BytesDiscarded += uint64(n)
}
