package io

import (
	"fmt"
	"os"

	. "github.com/weberc2/mesafs/pkg/types"
)

// FileVolume adapts an *os.File to the Volume interface.
type FileVolume struct {
	file *os.File
}

func NewFileVolume(file *os.File) FileVolume {
	return FileVolume{file: file}
}

func (volume FileVolume) ReadAt(offset Byte, b []byte) error {
	if _, err := volume.file.ReadAt(b, int64(offset)); err != nil {
		return fmt.Errorf(
			"reading file `%s` at offset `%d`: %w",
			volume.file.Name(),
			offset,
			err,
		)
	}
	return nil
}

func (volume FileVolume) WriteAt(offset Byte, b []byte) error {
	if _, err := volume.file.WriteAt(b, int64(offset)); err != nil {
		return fmt.Errorf(
			"writing file `%s` at offset `%d`: %w",
			volume.file.Name(),
			offset,
			err,
		)
	}
	return nil
}
