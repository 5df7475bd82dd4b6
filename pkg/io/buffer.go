package io

import (
	"fmt"
	"io"

	. "github.com/weberc2/mesafs/pkg/types"
)

// Buffer is an in-memory Volume, used by tests in place of a disk image.
type Buffer struct {
	data []byte
}

func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

func (b *Buffer) ReadAt(offset Byte, p []byte) error {
	if offset < 0 || offset+Byte(len(p)) > Byte(len(b.data)) {
		return fmt.Errorf(
			"reading `%d` bytes from buffer of size `%d` at offset `%d`: %w",
			len(p),
			len(b.data),
			offset,
			io.EOF,
		)
	}
	copy(p, b.data[offset:])
	return nil
}

func (b *Buffer) WriteAt(offset Byte, p []byte) error {
	if offset < 0 || offset+Byte(len(p)) > Byte(len(b.data)) {
		return fmt.Errorf(
			"writing `%d` bytes to buffer of size `%d` at offset `%d`: %w",
			len(p),
			len(b.data),
			offset,
			io.EOF,
		)
	}
	copy(b.data[offset:], p)
	return nil
}

func (b *Buffer) Bytes() []byte { return b.data }
