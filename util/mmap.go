package util

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// MmapFile maps filename read-only and returns its contents without copying.
// The returned function unmaps and closes; the slice is invalid after it runs.
// Empty files cannot be mapped and are returned as an empty slice.
func MmapFile(filename string) ([]byte, func(), error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	if info.Size() == 0 {
		file.Close()
		return []byte{}, func() {}, nil
	}
	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	done := func() {
		mapped.Unmap()
		file.Close()
	}
	return mapped, done, nil
}
