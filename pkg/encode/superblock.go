package encode

import (
	"fmt"

	. "github.com/weberc2/mesafs/pkg/types"
)

type BadMagicError struct {
	Found uint32
}

func (err BadMagicError) Error() string {
	return fmt.Sprintf(
		"bad magic: wanted `%#08x`; found `%#08x`",
		SuperblockMagic,
		err.Found,
	)
}

func EncodeSuperblock(sb *Superblock, b *[SuperblockSize]byte) {
	p := b[:]

	putU32(p, superblockMagicStart, SuperblockMagic)
	putU32(p, superblockVersionStart, sb.Version)
	putU32(p, superblockBlockSizeStart, uint32(sb.BlockSize))
	putBlock(p, superblockTotalBlocksStart, sb.TotalBlocks)
	putBlock(p, superblockFreeBlocksStart, sb.FreeBlocks)
	putIno(p, superblockTotalInodesStart, sb.TotalInodes)
	putIno(p, superblockFreeInodesStart, sb.FreeInodes)
	putIno(p, superblockRootInoStart, sb.RootIno)
	putBlock(p, superblockFirstDataBlockStart, sb.FirstDataBlock)
}

// DecodeSuperblock fails when the stored magic doesn't match. It never
// validates cross-field consistency (free counts vs. bitmap contents);
// that is the mutation sites' responsibility.
func DecodeSuperblock(sb *Superblock, b *[SuperblockSize]byte) error {
	magic := DecodeSuperblockUnchecked(sb, b)
	if magic != SuperblockMagic {
		return fmt.Errorf("decoding superblock: %w", BadMagicError{magic})
	}
	return nil
}

// DecodeSuperblockUnchecked decodes every field without validating the
// magic and returns the stored magic. The inspector uses it to report
// best-effort on volumes that fail validation.
func DecodeSuperblockUnchecked(sb *Superblock, b *[SuperblockSize]byte) uint32 {
	p := b[:]

	magic := getU32(p, superblockMagicStart)

	sb.Version = getU32(p, superblockVersionStart)
	sb.BlockSize = Byte(getU32(p, superblockBlockSizeStart))
	sb.TotalBlocks = getBlock(p, superblockTotalBlocksStart)
	sb.FreeBlocks = getBlock(p, superblockFreeBlocksStart)
	sb.TotalInodes = getIno(p, superblockTotalInodesStart)
	sb.FreeInodes = getIno(p, superblockFreeInodesStart)
	sb.RootIno = getIno(p, superblockRootInoStart)
	sb.FirstDataBlock = getBlock(p, superblockFirstDataBlockStart)
	return magic
}

const (
	superblockMagicStart Byte = 0
	superblockMagicSize  Byte = 4
	superblockMagicEnd        = superblockMagicStart + superblockMagicSize

	superblockVersionStart      = superblockMagicEnd
	superblockVersionSize  Byte = 4
	superblockVersionEnd        = superblockVersionStart + superblockVersionSize

	superblockBlockSizeStart      = superblockVersionEnd
	superblockBlockSizeSize  Byte = 4
	superblockBlockSizeEnd        = superblockBlockSizeStart + superblockBlockSizeSize

	superblockTotalBlocksStart      = superblockBlockSizeEnd
	superblockTotalBlocksSize  Byte = 4
	superblockTotalBlocksEnd        = superblockTotalBlocksStart + superblockTotalBlocksSize

	superblockFreeBlocksStart      = superblockTotalBlocksEnd
	superblockFreeBlocksSize  Byte = 4
	superblockFreeBlocksEnd        = superblockFreeBlocksStart + superblockFreeBlocksSize

	superblockTotalInodesStart      = superblockFreeBlocksEnd
	superblockTotalInodesSize  Byte = 4
	superblockTotalInodesEnd        = superblockTotalInodesStart + superblockTotalInodesSize

	superblockFreeInodesStart      = superblockTotalInodesEnd
	superblockFreeInodesSize  Byte = 4
	superblockFreeInodesEnd        = superblockFreeInodesStart + superblockFreeInodesSize

	superblockRootInoStart      = superblockFreeInodesEnd
	superblockRootInoSize  Byte = 4
	superblockRootInoEnd        = superblockRootInoStart + superblockRootInoSize

	superblockFirstDataBlockStart      = superblockRootInoEnd
	superblockFirstDataBlockSize  Byte = 4
	superblockFirstDataBlockEnd        = superblockFirstDataBlockStart + superblockFirstDataBlockSize
)
