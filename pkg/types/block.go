package types

type Block uint32

type Byte int64

const (
	// BlockSize is fixed by the on-disk contract shared with the kernel.
	BlockSize Byte = 4096

	// SectorSize is the unit the boot record's partition table counts in.
	SectorSize Byte = 512

	SectorsPerBlock = 8

	BlockNil Block = 0
)

// Fixed volume layout. The kernel-side reader hardcodes the same values,
// so they are constants rather than superblock-derived quantities.
const (
	BlockBitmapBlock Block = 0
	InodeBitmapBlock Block = 1
	InodeTableStart  Block = 2
	InodeTableBlocks Block = 8
	FirstDataBlock   Block = 10
)
