package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version   byte = 1
	kindEntry byte = 1
)

var (
	ErrCorrupt = errors.New("gqlfetch: corrupt entry")
	magic4     = [...]byte{'G', 'Q', 'L', 'F'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1=entry) | vlen(u32 be) | payload(vlen)
func EncodeEntry(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindEntry)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

func DecodeEntry(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindEntry {
		return nil, ErrCorrupt
	}

	off := 6

	// vlen
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // exact length; trailing bytes are corruption
		return nil, ErrCorrupt
	}

	return b[off : off+vlen], nil
}
