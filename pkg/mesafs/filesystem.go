package mesafs

import (
	"fmt"

	"github.com/weberc2/mesafs/pkg/encode"
	"github.com/weberc2/mesafs/pkg/inode/store"
	"github.com/weberc2/mesafs/pkg/io"
	. "github.com/weberc2/mesafs/pkg/types"
)

// FileSystem is an open session against a volume. It caches the
// superblock and both bitmaps in memory; mutations stage against the
// cached copies and persist them in a final metadata flush, so a failed
// operation leaves the on-disk volume untouched.
type FileSystem struct {
	Volume     io.Volume
	Superblock Superblock
	Inodes     store.VolumeInodeStore

	// blockBitmap is the full block-0 image. The superblock owns the
	// first SuperblockSize bytes; bits in the overlap are meaningless
	// and the superblock overlay wins whenever the block is written.
	blockBitmap [BlockSize]byte
	inodeBitmap [BlockSize]byte
}

// Load opens the volume, validating the superblock magic and pulling
// the metadata blocks into memory.
func Load(volume io.Volume) (*FileSystem, error) {
	fs := FileSystem{
		Volume: volume,
		Inodes: store.NewVolumeInodeStore(volume),
	}

	if err := io.ReadBlock(
		volume,
		BlockBitmapBlock,
		fs.blockBitmap[:],
	); err != nil {
		return nil, fmt.Errorf("loading filesystem: %w", err)
	}
	if _, err := encode.SplitBlockZero(
		&fs.blockBitmap,
		&fs.Superblock,
	); err != nil {
		return nil, fmt.Errorf("loading filesystem: %w", err)
	}

	if err := io.ReadBlock(
		volume,
		InodeBitmapBlock,
		fs.inodeBitmap[:],
	); err != nil {
		return nil, fmt.Errorf("loading filesystem: %w", err)
	}

	return &fs, nil
}

// flushMetadata persists the cached superblock and both bitmaps. Block 0
// is rebuilt from the bitmap image with the superblock overlaid on the
// front of it.
func (fs *FileSystem) flushMetadata() error {
	var blockZero [BlockSize]byte
	encode.MergeBlockZero(&fs.Superblock, fs.blockBitmap[:], &blockZero)
	if err := io.WriteBlock(
		fs.Volume,
		BlockBitmapBlock,
		blockZero[:],
	); err != nil {
		return fmt.Errorf("flushing metadata: %w", err)
	}
	if err := io.WriteBlock(
		fs.Volume,
		InodeBitmapBlock,
		fs.inodeBitmap[:],
	); err != nil {
		return fmt.Errorf("flushing metadata: %w", err)
	}
	return nil
}
