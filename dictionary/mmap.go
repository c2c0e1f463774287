package dictionary

import (
	"io"

	"golang.org/x/exp/mmap"

	"midomoji/internal/errutil"
)

// OpenMapped memory-maps path via golang.org/x/exp/mmap and builds a
// Container over a heap copy of its bytes, not over the mapping itself.
// ReaderAt does not expose its mapped
// region as a raw []byte across every platform it supports, so the bytes
// are pulled once via ReadAt into a buffer that Open then reinterprets
// zero-copy; the OS still services the read from the page cache rather
// than a fresh disk read. The returned closer must be closed after the
// Container is no longer in use.
func OpenMapped[T Record](path string) (*Container[T], io.Closer, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, nil, errutil.IOError("mapping dictionary file %q: %v", path, err)
	}
	buf := make([]byte, r.Len())
	if _, err := r.ReadAt(buf, 0); err != nil && err != io.EOF {
		r.Close()
		return nil, nil, errutil.IOError("reading mapped dictionary file %q: %v", path, err)
	}
	c, err := Open[T](buf)
	if err != nil {
		r.Close()
		return nil, nil, err
	}
	return c, r, nil
}
