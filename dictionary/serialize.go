package dictionary

import (
	"encoding/binary"
	"os"
	"unsafe"

	"midomoji/internal/errutil"
	"midomoji/matrix"
)

// Serialize writes a complete dictionary file to path: the fixed header
// followed by the four raw little-endian blocks (base, check, data,
// matrix), in that order. Blocks are written as raw slices rather than a
// length-prefixed structure, since every block's length is already recorded
// in the fixed header.
func Serialize[T Record](path string, base, check []uint32, data []T, mb *matrix.Builder) error {
	baseBytes := encodeUint32Slice(base)
	checkBytes := encodeUint32Slice(check)
	dataBytes := encodeRecordSlice(data)
	matrixBytes := encodeInt16Slice(mb.Cells())

	h := Header{
		BaseOff:        HeaderSize,
		CheckOff:       HeaderSize + uint64(len(baseBytes)),
		DataOff:        HeaderSize + uint64(len(baseBytes)) + uint64(len(checkBytes)),
		MatrixOff:      HeaderSize + uint64(len(baseBytes)) + uint64(len(checkBytes)) + uint64(len(dataBytes)),
		BaseLen:        uint64(len(base)),
		CheckLen:       uint64(len(check)),
		DataLen:        uint64(len(data)),
		MatrixLen:      uint64(len(mb.Cells())),
		MatrixLeftMax:  uint64(mb.LeftMax()),
		MatrixRightMax: uint64(mb.RightMax()),
	}

	f, err := os.Create(path)
	if err != nil {
		return errutil.IOError("creating dictionary file %q: %v", path, err)
	}
	defer f.Close()

	for _, block := range [][]byte{h.encode(), baseBytes, checkBytes, dataBytes, matrixBytes} {
		if _, err := f.Write(block); err != nil {
			return errutil.IOError("writing dictionary file %q: %v", path, err)
		}
	}
	return f.Sync()
}

func encodeUint32Slice(s []uint32) []byte {
	buf := make([]byte, 0, len(s)*4)
	for _, v := range s {
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}
	return buf
}

func encodeInt16Slice(s []int16) []byte {
	buf := make([]byte, 0, len(s)*2)
	for _, v := range s {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
	}
	return buf
}

// encodeRecordSlice reinterprets a []T as raw bytes using the same
// unsafe.Slice seam as Open, rather than a field-by-field encoder: T's
// layout is fixed by its Size() contract (checked in Open), so the bytes
// written here are exactly what Open will later read back.
func encodeRecordSlice[T Record](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	ptr := unsafe.Pointer(&s[0])
	return unsafe.Slice((*byte)(ptr), len(s)*elemSize)
}
