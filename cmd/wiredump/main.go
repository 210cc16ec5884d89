// wiredump reads a stream of wire frames from a capture file or a listening
// TCP socket, validates and decodes each frame, and logs a summary per
// message. It is meant for poking at captures from misbehaving peers: bytes
// that do not frame correctly are counted and skipped rather than aborting
// the scan.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/goldcrest-btc/goldcrestd/util/panics"
	"github.com/goldcrest-btc/goldcrestd/version"
	"github.com/goldcrest-btc/goldcrestd/wire"
)

const readBufferSize = 4096

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	log.Infof("Version %s", version.Version())
	log.Infof("Scanning %s frames", activeNetParams.Name)

	if cfg.Listen != "" {
		err = listenAndScan(cfg.Listen)
	} else {
		err = scanFile(cfg.InFile, cfg.HexInput)
	}
	if err != nil {
		panics.Exit(log, err.Error())
	}
	backendLog.Close()
}

// scanFile feeds the contents of the given capture file through a frame
// scanner. When hexInput is set the file is treated as text with one
// hex-encoded chunk of stream bytes per line; blank lines and lines starting
// with '#' are skipped.
func scanFile(path string, hexInput bool) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "cannot open %s", path)
	}
	defer file.Close()

	scanner := wire.NewFrameScanner(activeNetParams.Net)
	if hexInput {
		err = feedHexLines(file, scanner)
	} else {
		err = feedBinary(file, scanner)
	}
	if err != nil {
		return err
	}

	logScannerTotals(path, scanner)
	return nil
}

// feedBinary appends the raw bytes of r to the scanner in chunks, decoding
// frames as they complete.
func feedBinary(r io.Reader, scanner *wire.FrameScanner) error {
	buf := make([]byte, readBufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			scanner.Append(buf[:n])
			drainFrames(scanner)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read failed")
		}
	}
}

// feedHexLines appends one decoded hex line at a time, decoding frames as
// they complete. Feeding line by line rather than all at once means a capture
// deliberately split mid-header still exercises the scanner's buffering.
func feedHexLines(r io.Reader, scanner *wire.FrameScanner) error {
	lineScanner := bufio.NewScanner(r)
	lineScanner.Buffer(make([]byte, 0, readBufferSize), wire.MaxMessagePayload*2)
	lineNum := 0
	for lineScanner.Scan() {
		lineNum++
		line := strings.TrimSpace(lineScanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw, err := hex.DecodeString(line)
		if err != nil {
			return errors.Wrapf(err, "bad hex on line %d", lineNum)
		}
		scanner.Append(raw)
		drainFrames(scanner)
	}
	return errors.Wrap(lineScanner.Err(), "read failed")
}

// listenAndScan accepts TCP connections and scans the bytes each peer sends.
// Peers are scanned concurrently with a scanner per connection. The listener
// runs until the process is interrupted.
func listenAndScan(listenAddr string) error {
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return errors.Wrapf(err, "cannot listen on %s", listenAddr)
	}
	log.Infof("Listening on %s", listener.Addr())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	spawn(func() {
		sig := <-interrupt
		log.Infof("Received signal (%s). Shutting down...", sig)
		listener.Close()
	})

	for {
		conn, err := listener.Accept()
		if err != nil {
			// The interrupt handler closes the listener, which
			// surfaces here as a closed-connection error.
			return nil
		}
		spawn(func() {
			scanConn(conn)
		})
	}
}

// scanConn drains a single peer connection through its own frame scanner and
// logs the totals once the peer disconnects.
func scanConn(conn net.Conn) {
	peer := conn.RemoteAddr().String()
	log.Infof("Peer %s connected", peer)
	defer conn.Close()

	scanner := wire.NewFrameScanner(activeNetParams.Net)
	err := feedBinary(conn, scanner)
	if err != nil {
		log.Warnf("Peer %s: %s", peer, err)
	}
	logScannerTotals(peer, scanner)
}

// drainFrames decodes and logs every complete frame currently buffered.
func drainFrames(scanner *wire.FrameScanner) {
	for {
		frame := scanner.Next()
		if frame == nil {
			return
		}
		msg, err := wire.DecodeMessagePayload(frame.Command, frame.Payload)
		if err != nil {
			log.Warnf("[%s] %d byte payload: %s", frame.Command,
				len(frame.Payload), err)
			continue
		}
		log.Infof("[%s] %d byte payload", frame.Command, len(frame.Payload))
		log.Debugf("%s", spew.Sdump(msg))
	}
}

func logScannerTotals(source string, scanner *wire.FrameScanner) {
	log.Infof("%s: %d frames, %d bytes discarded, %d checksum failures, "+
		"%d bytes left unframed", source, scanner.FramesScanned,
		scanner.BytesDiscarded, scanner.ChecksumFailures, scanner.Buffered())
}
