package encode

import (
	"fmt"

	. "github.com/weberc2/mesafs/pkg/types"
)

// Block 0 is the union of the superblock record and the block bitmap: the
// superblock owns the first 512 bytes and the bitmap nominally spans the
// whole block. Bits that fall inside the superblock's 512 bytes are not
// meaningful on disk; the superblock always wins the overlap when the
// block is written.

// MergeBlockZero composes the single on-disk image of block 0 from the
// superblock record and the full-block bitmap image.
func MergeBlockZero(sb *Superblock, bitmap []byte, out *[BlockSize]byte) {
	copy(out[:], bitmap)
	EncodeSuperblock(sb, (*[SuperblockSize]byte)(out[:SuperblockSize]))
}

// SplitBlockZero extracts the superblock and the bitmap image from a raw
// block 0. The returned bitmap aliases the input block; bits below the
// superblock overlap carry whatever the superblock bytes happen to spell,
// exactly as the kernel-side reader sees them.
func SplitBlockZero(block *[BlockSize]byte, sb *Superblock) ([]byte, error) {
	if err := DecodeSuperblock(
		sb,
		(*[SuperblockSize]byte)(block[:SuperblockSize]),
	); err != nil {
		return nil, fmt.Errorf("splitting block 0: %w", err)
	}
	return block[:], nil
}
