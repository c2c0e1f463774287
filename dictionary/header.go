package dictionary

import "encoding/binary"

// HeaderSize is the fixed on-disk size of Header: ten 64-bit words,
// regardless of host word width. 80 is a multiple of 4, so the base block
// that follows is 4-byte aligned at mmap offset HeaderSize.
const HeaderSize = 80

// Header is the fixed layout at file offset 0. All fields are
// little-endian uint64, independent of GOARCH.
type Header struct {
	BaseOff   uint64
	CheckOff  uint64
	DataOff   uint64
	MatrixOff uint64

	BaseLen   uint64
	CheckLen  uint64
	DataLen   uint64
	MatrixLen uint64

	MatrixLeftMax  uint64
	MatrixRightMax uint64
}

func (h *Header) encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint64(buf[0:], h.BaseOff)
	binary.LittleEndian.PutUint64(buf[8:], h.CheckOff)
	binary.LittleEndian.PutUint64(buf[16:], h.DataOff)
	binary.LittleEndian.PutUint64(buf[24:], h.MatrixOff)
	binary.LittleEndian.PutUint64(buf[32:], h.BaseLen)
	binary.LittleEndian.PutUint64(buf[40:], h.CheckLen)
	binary.LittleEndian.PutUint64(buf[48:], h.DataLen)
	binary.LittleEndian.PutUint64(buf[56:], h.MatrixLen)
	binary.LittleEndian.PutUint64(buf[64:], h.MatrixLeftMax)
	binary.LittleEndian.PutUint64(buf[72:], h.MatrixRightMax)
	return buf
}

func decodeHeader(buf []byte) Header {
	return Header{
		BaseOff:        binary.LittleEndian.Uint64(buf[0:]),
		CheckOff:       binary.LittleEndian.Uint64(buf[8:]),
		DataOff:        binary.LittleEndian.Uint64(buf[16:]),
		MatrixOff:      binary.LittleEndian.Uint64(buf[24:]),
		BaseLen:        binary.LittleEndian.Uint64(buf[32:]),
		CheckLen:       binary.LittleEndian.Uint64(buf[40:]),
		DataLen:        binary.LittleEndian.Uint64(buf[48:]),
		MatrixLen:      binary.LittleEndian.Uint64(buf[56:]),
		MatrixLeftMax:  binary.LittleEndian.Uint64(buf[64:]),
		MatrixRightMax: binary.LittleEndian.Uint64(buf[72:]),
	}
}
