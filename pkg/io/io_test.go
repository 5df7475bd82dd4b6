package io

import (
	"bytes"
	"errors"
	stdio "io"
	"testing"

	. "github.com/weberc2/mesafs/pkg/types"
)

func TestBuffer_Bounds(t *testing.T) {
	buf := NewBuffer(make([]byte, 16))

	if err := buf.WriteAt(8, []byte("12345678")); err != nil {
		t.Fatalf("in-bounds write: unexpected err: %v", err)
	}
	if err := buf.WriteAt(9, []byte("12345678")); !errors.Is(err, stdio.EOF) {
		t.Fatalf("out-of-bounds write: wanted `EOF`; found: %v", err)
	}

	p := make([]byte, 8)
	if err := buf.ReadAt(8, p); err != nil {
		t.Fatalf("in-bounds read: unexpected err: %v", err)
	}
	if !bytes.Equal(p, []byte("12345678")) {
		t.Fatalf("read: wanted `12345678`; found `%s`", p)
	}
	if err := buf.ReadAt(9, p); !errors.Is(err, stdio.EOF) {
		t.Fatalf("out-of-bounds read: wanted `EOF`; found: %v", err)
	}
}

func TestOffsetVolume(t *testing.T) {
	inner := NewBuffer(make([]byte, 64))
	volume := NewOffsetVolume(inner, 16)

	if err := volume.WriteAt(0, []byte("abcd")); err != nil {
		t.Fatalf("writing: unexpected err: %v", err)
	}
	if !bytes.Equal(inner.Bytes()[16:20], []byte("abcd")) {
		t.Fatal("offset write landed at the wrong position")
	}

	p := make([]byte, 4)
	if err := volume.ReadAt(0, p); err != nil {
		t.Fatalf("reading: unexpected err: %v", err)
	}
	if !bytes.Equal(p, []byte("abcd")) {
		t.Fatalf("offset read: wanted `abcd`; found `%s`", p)
	}
}

func TestReadBlock_SizeMismatch(t *testing.T) {
	buf := NewBuffer(make([]byte, 2*int(BlockSize)))
	if err := ReadBlock(buf, 0, make([]byte, 7)); err == nil {
		t.Fatal("short buffer: wanted err; found `nil`")
	}
	if err := WriteBlock(buf, 0, make([]byte, 7)); err == nil {
		t.Fatal("short buffer: wanted err; found `nil`")
	}
}
