package binaryserializer

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/pkg/errors"
)

// TestBinarySerializer tests the integer read and write functions against
// known byte sequences in both byte orders.
func TestBinarySerializer(t *testing.T) {
	tests := []struct {
		in        uint64              // Value to write
		buf       []byte              // Wire encoding
		byteOrder binary.ByteOrder    // Byte order to use
		size      int                 // Size of the integer in bytes
	}{
		{1, []byte{0x01}, nil, 1},
		{256, []byte{0x00, 0x01}, binary.LittleEndian, 2},
		{256, []byte{0x01, 0x00}, binary.BigEndian, 2},
		{65536, []byte{0x00, 0x00, 0x01, 0x00}, binary.LittleEndian, 4},
		{4294967296, []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}, binary.LittleEndian, 8},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Write to wire format.
		var buf bytes.Buffer
		var err error
		switch test.size {
		case 1:
			err = PutUint8(&buf, uint8(test.in))
		case 2:
			err = PutUint16(&buf, test.byteOrder, uint16(test.in))
		case 4:
			err = PutUint32(&buf, test.byteOrder, uint32(test.in))
		case 8:
			err = PutUint64(&buf, test.byteOrder, test.in)
		}
		if err != nil {
			t.Errorf("put #%d: %v", i, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("put #%d: wrong bytes - got %x, want %x", i,
				buf.Bytes(), test.buf)
			continue
		}

		// Read from wire format.
		r := bytes.NewReader(test.buf)
		var val uint64
		switch test.size {
		case 1:
			var v8 uint8
			v8, err = Uint8(r)
			val = uint64(v8)
		case 2:
			var v16 uint16
			v16, err = Uint16(r, test.byteOrder)
			val = uint64(v16)
		case 4:
			var v32 uint32
			v32, err = Uint32(r, test.byteOrder)
			val = uint64(v32)
		case 8:
			val, err = Uint64(r, test.byteOrder)
		}
		if err != nil {
			t.Errorf("read #%d: %v", i, err)
			continue
		}
		if val != test.in {
			t.Errorf("read #%d: wrong value - got %d, want %d", i,
				val, test.in)
			continue
		}
	}
}

// TestBinarySerializerErrors forces the short read error paths.
func TestBinarySerializerErrors(t *testing.T) {
	r := bytes.NewReader([]byte{0x01})
	if _, err := Uint32(r, binary.LittleEndian); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Uint32: expected unexpected EOF, got %v", err)
	}

	r = bytes.NewReader(nil)
	if _, err := Uint8(r); !errors.Is(err, io.EOF) {
		t.Errorf("Uint8: expected EOF, got %v", err)
	}
}
