package mesafs

import (
	"fmt"
	"time"

	"github.com/weberc2/mesafs/pkg/alloc"
	"github.com/weberc2/mesafs/pkg/inode/store"
	"github.com/weberc2/mesafs/pkg/io"
	. "github.com/weberc2/mesafs/pkg/types"
)

// Format initializes an empty filesystem on the volume: fresh
// superblock, both bitmaps with the metadata region and the root
// directory's block reserved, a zeroed inode table holding only the
// root inode, and a zeroed root directory block.
func Format(
	volume io.Volume,
	totalBlocks Block,
	now time.Time,
) (*FileSystem, error) {
	if totalBlocks <= FirstDataBlock {
		return nil, fmt.Errorf(
			"formatting `%d`-block volume: %w",
			totalBlocks,
			VolumeTooSmallErr,
		)
	}

	fs := FileSystem{
		Volume:     volume,
		Superblock: NewSuperblock(totalBlocks),
		Inodes:     store.NewVolumeInodeStore(volume),
	}

	// blocks 0..FirstDataBlock: metadata region plus the root directory
	blockBitmap := alloc.FromImage(fs.blockBitmap[:])
	for b := Block(0); b <= FirstDataBlock; b++ {
		blockBitmap.Reserve(uint32(b))
	}

	inodeBitmap := alloc.FromImage(fs.inodeBitmap[:])
	inodeBitmap.Reserve(uint32(InoNil))
	inodeBitmap.Reserve(uint32(InoRoot))

	if err := fs.flushMetadata(); err != nil {
		return nil, fmt.Errorf("formatting volume: %w", err)
	}

	var zero [BlockSize]byte
	for i := Block(0); i < InodeTableBlocks; i++ {
		if err := io.WriteBlock(
			volume,
			InodeTableStart+i,
			zero[:],
		); err != nil {
			return nil, fmt.Errorf("formatting volume: %w", err)
		}
	}

	root := Inode{
		Ino:        InoRoot,
		FileType:   FileTypeDir,
		Flags:      FlagUsed,
		LinksCount: 1,
		BlocksUsed: 1,
		Created:    uint64(now.Unix()),
		Modified:   uint64(now.Unix()),
	}
	root.DirectBlocks[0] = FirstDataBlock
	if err := fs.Inodes.Put(&root); err != nil {
		return nil, fmt.Errorf("formatting volume: %w", err)
	}

	// all-zero directory block: every slot free
	if err := io.WriteBlock(volume, FirstDataBlock, zero[:]); err != nil {
		return nil, fmt.Errorf("formatting volume: %w", err)
	}

	return &fs, nil
}
