package encode

import (
	"fmt"

	. "github.com/weberc2/mesafs/pkg/types"
)

func EncodeInode(inode *Inode, b *[InodeSize]byte) {
	p := b[:]

	putIno(p, inodeInoStart, inode.Ino)
	putU8(p, inodeFileTypeStart, uint8(inode.FileType))
	putU8(p, inodeFlagsStart, inode.Flags)
	putU16(p, inodeLinksCountStart, inode.LinksCount)
	putU32(p, inodeSizeStart, uint32(inode.Size))
	putU32(p, inodeBlocksUsedStart, inode.BlocksUsed)

	for i := Byte(0); i < DirectBlocksCount; i++ {
		putBlock(p, inodeDirectBlocksStart+i*blockPointerSize, inode.DirectBlocks[i])
	}

	putBlock(p, inodeIndirectBlockStart, inode.IndirectBlock)
	putU64(p, inodeCreatedStart, inode.Created)
	putU64(p, inodeModifiedStart, inode.Modified)
}

func DecodeInode(inode *Inode, b *[InodeSize]byte) error {
	p := b[:]

	// an all-zero slot is an unused inode, not a malformed record, so the
	// file type is only validated when the used flag is set
	flags := getU8(p, inodeFlagsStart)
	ft := FileType(getU8(p, inodeFileTypeStart))
	if flags&FlagUsed != 0 {
		if err := ft.Validate(); err != nil {
			return fmt.Errorf("decoding inode: %w", err)
		}
	}

	inode.Ino = getIno(p, inodeInoStart)
	inode.FileType = ft
	inode.Flags = flags
	inode.LinksCount = getU16(p, inodeLinksCountStart)
	inode.Size = Byte(getU32(p, inodeSizeStart))
	inode.BlocksUsed = getU32(p, inodeBlocksUsedStart)

	for i := Byte(0); i < DirectBlocksCount; i++ {
		inode.DirectBlocks[i] = getBlock(p, inodeDirectBlocksStart+i*blockPointerSize)
	}

	inode.IndirectBlock = getBlock(p, inodeIndirectBlockStart)
	inode.Created = getU64(p, inodeCreatedStart)
	inode.Modified = getU64(p, inodeModifiedStart)
	return nil
}

const (
	blockPointerSize Byte = 4

	inodeInoStart Byte = 0
	inodeInoSize  Byte = 4
	inodeInoEnd        = inodeInoStart + inodeInoSize

	inodeFileTypeStart      = inodeInoEnd
	inodeFileTypeSize  Byte = 1
	inodeFileTypeEnd        = inodeFileTypeStart + inodeFileTypeSize

	inodeFlagsStart      = inodeFileTypeEnd
	inodeFlagsSize  Byte = 1
	inodeFlagsEnd        = inodeFlagsStart + inodeFlagsSize

	inodeLinksCountStart      = inodeFlagsEnd
	inodeLinksCountSize  Byte = 2
	inodeLinksCountEnd        = inodeLinksCountStart + inodeLinksCountSize

	inodeSizeStart      = inodeLinksCountEnd
	inodeSizeSize  Byte = 4
	inodeSizeEnd        = inodeSizeStart + inodeSizeSize

	inodeBlocksUsedStart      = inodeSizeEnd
	inodeBlocksUsedSize  Byte = 4
	inodeBlocksUsedEnd        = inodeBlocksUsedStart + inodeBlocksUsedSize

	inodeDirectBlocksStart = inodeBlocksUsedEnd
	inodeDirectBlocksSize  = DirectBlocksCount * blockPointerSize
	inodeDirectBlocksEnd   = inodeDirectBlocksStart + inodeDirectBlocksSize

	inodeIndirectBlockStart = inodeDirectBlocksEnd
	inodeIndirectBlockSize  = blockPointerSize
	inodeIndirectBlockEnd   = inodeIndirectBlockStart + inodeIndirectBlockSize

	inodeCreatedStart      = inodeIndirectBlockEnd
	inodeCreatedSize  Byte = 8
	inodeCreatedEnd        = inodeCreatedStart + inodeCreatedSize

	inodeModifiedStart      = inodeCreatedEnd
	inodeModifiedSize  Byte = 8
	inodeModifiedEnd        = inodeModifiedStart + inodeModifiedSize
)
