package alloc

import (
	. "github.com/weberc2/mesafs/pkg/types"
)

// BlockAllocator claims data blocks from the block bitmap and keeps the
// superblock's free-block counter consistent with every claim. The scan
// starts strictly after the metadata region and the root directory's
// block.
type BlockAllocator struct {
	Bitmap     Bitmap
	Superblock *Superblock
}

func (ba BlockAllocator) Alloc() (uint32, bool) {
	b, ok := ba.Bitmap.AllocFrom(
		uint32(FirstDataBlock)+1,
		uint32(ba.Superblock.TotalBlocks),
	)
	if !ok {
		return 0, false
	}
	ba.Superblock.FreeBlocks--
	return b, true
}

func (ba BlockAllocator) Reserve(b uint32) {
	ba.Bitmap.Reserve(b)
	ba.Superblock.FreeBlocks--
}

func (ba BlockAllocator) Free(b uint32) {
	ba.Bitmap.Free(b)
	ba.Superblock.FreeBlocks++
}

var _ Allocator = BlockAllocator{}
