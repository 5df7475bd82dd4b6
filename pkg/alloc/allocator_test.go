package alloc

import (
	"testing"

	. "github.com/weberc2/mesafs/pkg/types"
)

func TestBlockAllocator(t *testing.T) {
	sb := NewSuperblock(16)
	ba := BlockAllocator{Bitmap: New(int(BlockSize)), Superblock: &sb}

	block, ok := ba.Alloc()
	if !ok {
		t.Fatal("alloc: wanted a block; found none")
	}
	if wanted := uint32(FirstDataBlock) + 1; block != wanted {
		t.Fatalf("first block: wanted `%d`; found `%d`", wanted, block)
	}
	if wanted := Block(16) - FirstDataBlock - 2; sb.FreeBlocks != wanted {
		t.Fatalf("free blocks: wanted `%d`; found `%d`", wanted, sb.FreeBlocks)
	}

	// 16 total, 11 reserved for metadata + root dir, one just claimed
	for i := 0; i < 4; i++ {
		if _, ok := ba.Alloc(); !ok {
			t.Fatalf("alloc %d: wanted a block; found none", i+2)
		}
	}
	if _, ok := ba.Alloc(); ok {
		t.Fatal("alloc on full volume: wanted none; found a block")
	}

	ba.Free(block)
	if wanted := Block(1); sb.FreeBlocks != wanted {
		t.Fatalf(
			"free blocks after free: wanted `%d`; found `%d`",
			wanted,
			sb.FreeBlocks,
		)
	}
}

func TestInoAllocator(t *testing.T) {
	sb := NewSuperblock(16)
	ia := InoAllocator{Bitmap: New(int(BlockSize)), Superblock: &sb}

	ino, ok := ia.Alloc()
	if !ok {
		t.Fatal("alloc: wanted an ino; found none")
	}
	if wanted := uint32(InoFirstAllocatable); ino != wanted {
		t.Fatalf("first ino: wanted `%d`; found `%d`", wanted, ino)
	}
	if wanted := InodeCount - 3; sb.FreeInodes != wanted {
		t.Fatalf("free inodes: wanted `%d`; found `%d`", wanted, sb.FreeInodes)
	}
}
