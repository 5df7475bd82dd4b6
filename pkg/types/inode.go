package types

import (
	"fmt"
)

type Ino uint32

const (
	DirectBlocksCount        = 10
	InodeSize           Byte = 128
	InodesPerBlock      Ino  = Ino(BlockSize / InodeSize)
	InodeCount          Ino  = 256
	InoNil              Ino  = 0
	InoRoot             Ino  = 1
	InoFirstAllocatable Ino  = 2

	FlagUsed uint8 = 0x01
)

type Inode struct {
	Ino           Ino
	FileType      FileType
	Flags         uint8
	LinksCount    uint16
	Size          Byte
	BlocksUsed    uint32
	DirectBlocks  [DirectBlocksCount]Block
	IndirectBlock Block // present on disk, never populated by these tools
	Created       uint64
	Modified      uint64
}

type FileType uint8

const (
	FileTypeInvalid FileType = iota
	FileTypeRegular
	FileTypeDir
	FileTypeSymlink
)

func (ft FileType) String() string {
	switch ft {
	case FileTypeInvalid:
		return "Invalid"
	case FileTypeRegular:
		return "Regular"
	case FileTypeDir:
		return "Dir"
	case FileTypeSymlink:
		return "Symlink"
	default:
		panic(fmt.Sprintf("invalid file type: `%d`", ft))
	}
}

func (ft FileType) Validate() error {
	if ft <= FileTypeInvalid || ft > FileTypeSymlink {
		return fmt.Errorf(
			"validating file type `%d`: %w",
			ft,
			InvalidFileTypeErr,
		)
	}
	return nil
}

const (
	InvalidFileTypeErr ConstError = "invalid file type"
)
