package msa

import (
	. "github.com/weberc2/mesafs/pkg/types"
)

// An archive container is a fixed-size header, a table of fixed-size
// file entries, and the concatenated file payloads. All integers are
// little-endian; all string fields are NUL-padded fixed buffers.

const (
	// Magic is ascii "MESA" read as a little-endian u32.
	Magic   uint32 = 0x4153454D
	Version uint32 = 1

	NameMax    = 64
	VersionMax = 16
	PathMax    = 256
	DescMax    = 256
	MaxFiles   = 256
	MaxDeps    = 16

	HeaderSize Byte = 1578
	EntrySize  Byte = 324
)

type EntryType uint8

const (
	EntryTypeFile EntryType = iota
	EntryTypeDir
	EntryTypeSymlink
)

func (et EntryType) String() string {
	switch et {
	case EntryTypeFile:
		return "File"
	case EntryTypeDir:
		return "Dir"
	case EntryTypeSymlink:
		return "Symlink"
	default:
		return "Invalid"
	}
}

// Header carries the container's package metadata.
type Header struct {
	Name        string
	PkgVersion  string
	Author      string
	Description string
	NumFiles    uint32
	TotalSize   uint32
	HeaderSize  uint32
	Deps        []string
	Checksum    uint32
}

// Entry describes one packaged file or directory. Offset is the
// payload's position from the start of the container; directories carry
// no payload and leave it zero.
type Entry struct {
	Path       string
	Size       uint32
	Offset     uint32
	Mode       uint32
	Type       EntryType
	Executable bool
}

const (
	TooManyFilesErr    ConstError = "too many files"
	TooManyDepsErr     ConstError = "too many dependencies"
	FieldTooLongErr    ConstError = "field exceeds its fixed buffer"
	BadArchiveMagicErr ConstError = "bad archive magic"
)
