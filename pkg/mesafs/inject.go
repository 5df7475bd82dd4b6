package mesafs

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/weberc2/mesafs/pkg/alloc"
	"github.com/weberc2/mesafs/pkg/directory"
	"github.com/weberc2/mesafs/pkg/io"
	"github.com/weberc2/mesafs/pkg/math"
	. "github.com/weberc2/mesafs/pkg/types"
)

// Inject writes `data` into the filesystem as a regular file named by
// the final segment of `destPath`, linking it into the root directory.
//
// Every allocation and the directory insertion stage against in-memory
// copies of the metadata; nothing is persisted until all of them
// succeed, so a failed injection leaves both the volume and the session
// unchanged.
func (fs *FileSystem) Inject(
	data []byte,
	destPath string,
	now time.Time,
) (*Inode, error) {
	name := strings.TrimPrefix(path.Base(destPath), "/")
	if name == "" || name == "." {
		return nil, fmt.Errorf(
			"injecting `%s`: %w",
			destPath,
			BadDestPathErr,
		)
	}

	blocksNeeded := math.DivRoundUp(Byte(len(data)), BlockSize)
	if blocksNeeded < 1 {
		// a zero-length file still owns one block
		blocksNeeded = 1
	}
	if blocksNeeded > DirectBlocksCount {
		return nil, fmt.Errorf(
			"injecting `%s` (`%d` bytes): %w",
			name,
			len(data),
			FileTooLargeErr,
		)
	}

	// stage against copies; adopt them only once everything succeeds
	sb := fs.Superblock
	var blockBitmap, inodeBitmap [BlockSize]byte
	copy(blockBitmap[:], fs.blockBitmap[:])
	copy(inodeBitmap[:], fs.inodeBitmap[:])

	inos := alloc.InoAllocator{
		Bitmap:     alloc.FromImage(inodeBitmap[:]),
		Superblock: &sb,
	}
	ino, ok := inos.Alloc()
	if !ok {
		return nil, fmt.Errorf("injecting `%s`: %w", name, OutOfInosErr)
	}

	blocks := alloc.BlockAllocator{
		Bitmap:     alloc.FromImage(blockBitmap[:]),
		Superblock: &sb,
	}
	var claimed [DirectBlocksCount]Block
	for i := Byte(0); i < blocksNeeded; i++ {
		block, ok := blocks.Alloc()
		if !ok {
			return nil, fmt.Errorf(
				"injecting `%s`: %w",
				name,
				OutOfBlocksErr,
			)
		}
		claimed[i] = Block(block)
	}

	var root Inode
	if err := fs.Inodes.Get(InoRoot, &root); err != nil {
		return nil, fmt.Errorf("injecting `%s`: %w", name, err)
	}
	var dirBlock [BlockSize]byte
	if err := io.ReadBlock(
		fs.Volume,
		root.DirectBlocks[0],
		dirBlock[:],
	); err != nil {
		return nil, fmt.Errorf("injecting `%s`: %w", name, err)
	}
	slot, err := directory.FreeSlot(&dirBlock)
	if err != nil {
		return nil, fmt.Errorf("injecting `%s`: %w", name, err)
	}
	if err := directory.PutEntry(
		&dirBlock,
		slot,
		Ino(ino),
		FileTypeRegular,
		name,
	); err != nil {
		return nil, fmt.Errorf("injecting `%s`: %w", name, err)
	}

	inode := Inode{
		Ino:        Ino(ino),
		FileType:   FileTypeRegular,
		Flags:      FlagUsed,
		LinksCount: 1,
		Size:       Byte(len(data)),
		BlocksUsed: uint32(blocksNeeded),
		Created:    uint64(now.Unix()),
		Modified:   uint64(now.Unix()),
	}
	copy(inode.DirectBlocks[:], claimed[:blocksNeeded])

	// commit: payload first, then the inode record and directory entry,
	// and the metadata (allocations, counters) last
	var buf [BlockSize]byte
	for i := Byte(0); i < blocksNeeded; i++ {
		start := math.Min(i*BlockSize, Byte(len(data)))
		end := math.Min(start+BlockSize, Byte(len(data)))
		n := copy(buf[:], data[start:end])
		for j := Byte(n); j < BlockSize; j++ {
			buf[j] = 0
		}
		if err := io.WriteBlock(fs.Volume, claimed[i], buf[:]); err != nil {
			return nil, fmt.Errorf("injecting `%s`: %w", name, err)
		}
	}

	if err := fs.Inodes.Put(&inode); err != nil {
		return nil, fmt.Errorf("injecting `%s`: %w", name, err)
	}

	if err := io.WriteBlock(
		fs.Volume,
		root.DirectBlocks[0],
		dirBlock[:],
	); err != nil {
		return nil, fmt.Errorf("injecting `%s`: %w", name, err)
	}

	fs.Superblock = sb
	copy(fs.blockBitmap[:], blockBitmap[:])
	copy(fs.inodeBitmap[:], inodeBitmap[:])
	if err := fs.flushMetadata(); err != nil {
		return nil, fmt.Errorf("injecting `%s`: %w", name, err)
	}

	return &inode, nil
}
