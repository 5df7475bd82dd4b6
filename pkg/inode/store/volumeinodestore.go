package store

import (
	"fmt"

	"github.com/weberc2/mesafs/pkg/encode"
	"github.com/weberc2/mesafs/pkg/io"
	. "github.com/weberc2/mesafs/pkg/types"
)

// Locate maps an inode number to its position in the fixed inode table:
// the owning table block and the record slot within that block.
func Locate(ino Ino) (Block, Ino) {
	return InodeTableStart + Block(ino/InodesPerBlock), ino % InodesPerBlock
}

// VolumeInodeStore reads and writes fixed-size inode records through
// whole-block read-modify-write of the owning table block. Concurrent
// writers to inodes sharing a table block are not serialized here; the
// tools are single-writer by operational convention.
type VolumeInodeStore struct {
	volume io.Volume
}

func NewVolumeInodeStore(volume io.Volume) VolumeInodeStore {
	return VolumeInodeStore{volume}
}

func (store VolumeInodeStore) Put(inode *Inode) error {
	block, slot := Locate(inode.Ino)
	var buf [BlockSize]byte
	if err := io.ReadBlock(store.volume, block, buf[:]); err != nil {
		return fmt.Errorf("storing inode `%d`: %w", inode.Ino, err)
	}

	start := Byte(slot) * InodeSize
	encode.EncodeInode(inode, (*[InodeSize]byte)(buf[start:start+InodeSize]))

	if err := io.WriteBlock(store.volume, block, buf[:]); err != nil {
		return fmt.Errorf("storing inode `%d`: %w", inode.Ino, err)
	}
	return nil
}

func (store VolumeInodeStore) Get(ino Ino, output *Inode) error {
	block, slot := Locate(ino)
	var buf [BlockSize]byte
	if err := io.ReadBlock(store.volume, block, buf[:]); err != nil {
		return fmt.Errorf("fetching inode `%d`: %w", ino, err)
	}

	start := Byte(slot) * InodeSize
	if err := encode.DecodeInode(
		output,
		(*[InodeSize]byte)(buf[start:start+InodeSize]),
	); err != nil {
		return fmt.Errorf("fetching inode `%d`: %w", ino, err)
	}
	return nil
}
