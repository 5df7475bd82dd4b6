package types

const (
	// SuperblockMagic is ascii "MESA" read as a little-endian u32.
	SuperblockMagic uint32 = 0x4D455341

	SuperblockVersion uint32 = 1

	// SuperblockSize is the size of the superblock record on disk. The
	// record shares block 0 with the block bitmap: the first 512 bytes of
	// the block hold the superblock and only the tail of the block is
	// meaningful bitmap data.
	SuperblockSize Byte = 512
)

// Superblock owns the volume-wide counters. The magic and version are the
// codec's concern; the struct only carries fields callers mutate or read.
type Superblock struct {
	Version        uint32
	BlockSize      Byte
	TotalBlocks    Block
	FreeBlocks     Block
	TotalInodes    Ino
	FreeInodes     Ino
	RootIno        Ino
	FirstDataBlock Block
}

func NewSuperblock(totalBlocks Block) Superblock {
	return Superblock{
		Version:        SuperblockVersion,
		BlockSize:      BlockSize,
		TotalBlocks:    totalBlocks,
		FreeBlocks:     totalBlocks - FirstDataBlock - 1, // -1 for the root dir block
		TotalInodes:    InodeCount,
		FreeInodes:     InodeCount - 2, // ino 0 reserved, ino 1 is root
		RootIno:        InoRoot,
		FirstDataBlock: FirstDataBlock,
	}
}
