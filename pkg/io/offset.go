package io

import (
	"fmt"

	. "github.com/weberc2/mesafs/pkg/types"
)

type OffsetReadAt struct {
	inner  ReadAt
	offset Byte
}

func NewOffsetReadAt(inner ReadAt, offset Byte) *OffsetReadAt {
	return &OffsetReadAt{inner: inner, offset: offset}
}

func (r *OffsetReadAt) ReadAt(offset Byte, b []byte) error {
	if err := r.inner.ReadAt(offset+r.offset, b); err != nil {
		return fmt.Errorf(
			"reading additional offset `%d` from base offset `%d` (total "+
				"offset `%d` bytes): %w",
			offset,
			r.offset,
			offset+r.offset,
			err,
		)
	}
	return nil
}

type OffsetWriteAt struct {
	inner  WriteAt
	offset Byte
}

func NewOffsetWriteAt(inner WriteAt, offset Byte) *OffsetWriteAt {
	return &OffsetWriteAt{inner: inner, offset: offset}
}

func (w *OffsetWriteAt) WriteAt(offset Byte, b []byte) error {
	if err := w.inner.WriteAt(offset+w.offset, b); err != nil {
		return fmt.Errorf(
			"writing additional offset `%d` from base offset `%d` (total "+
				"offset `%d` bytes): %w",
			offset,
			w.offset,
			offset+w.offset,
			err,
		)
	}
	return nil
}

// OffsetVolume shifts every access by a fixed base offset. It's how the
// partition's byte offset is applied once per session: the rest of the
// code addresses the volume as if the partition began at offset 0.
type OffsetVolume struct {
	inner  Volume
	offset Byte
}

func NewOffsetVolume(inner Volume, offset Byte) *OffsetVolume {
	return &OffsetVolume{inner: inner, offset: offset}
}

func (v *OffsetVolume) ReadAt(offset Byte, b []byte) error {
	return NewOffsetReadAt(v.inner, v.offset).ReadAt(offset, b)
}

func (v *OffsetVolume) WriteAt(offset Byte, b []byte) error {
	return NewOffsetWriteAt(v.inner, v.offset).WriteAt(offset, b)
}
