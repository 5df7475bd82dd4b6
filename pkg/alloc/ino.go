package alloc

import (
	. "github.com/weberc2/mesafs/pkg/types"
)

// InoAllocator claims inode numbers from the inode bitmap and keeps the
// superblock's free-inode counter consistent with every claim. The scan
// starts at 2 to skip the reserved inode 0 and the root inode 1.
type InoAllocator struct {
	Bitmap     Bitmap
	Superblock *Superblock
}

func (ia InoAllocator) Alloc() (uint32, bool) {
	ino, ok := ia.Bitmap.AllocFrom(
		uint32(InoFirstAllocatable),
		uint32(ia.Superblock.TotalInodes),
	)
	if !ok {
		return 0, false
	}
	ia.Superblock.FreeInodes--
	return ino, true
}

func (ia InoAllocator) Reserve(ino uint32) {
	ia.Bitmap.Reserve(ino)
	ia.Superblock.FreeInodes--
}

func (ia InoAllocator) Free(ino uint32) {
	ia.Bitmap.Free(ino)
	ia.Superblock.FreeInodes++
}

var _ Allocator = InoAllocator{}
