package mesafs

import (
	"fmt"
	stdio "io"

	"github.com/weberc2/mesafs/pkg/directory"
	"github.com/weberc2/mesafs/pkg/encode"
	"github.com/weberc2/mesafs/pkg/inode/store"
	"github.com/weberc2/mesafs/pkg/io"
	. "github.com/weberc2/mesafs/pkg/types"
)

// Report is a read-only snapshot of the volume's metadata and root
// directory listing.
type Report struct {
	Magic      uint32
	MagicOK    bool
	Superblock Superblock
	Root       Inode
	Entries    []ReportEntry
}

type ReportEntry struct {
	Name     string
	Ino      Ino
	FileType FileType
	Size     Byte
	Blocks   uint32
}

// Inspect reads the volume's metadata and root directory without
// mutating anything. When the superblock magic doesn't match, the
// report still carries the decoded superblock fields alongside the
// error so callers can print what the volume claims about itself.
func Inspect(volume io.Volume) (*Report, error) {
	var blockZero [BlockSize]byte
	if err := io.ReadBlock(
		volume,
		BlockBitmapBlock,
		blockZero[:],
	); err != nil {
		return nil, fmt.Errorf("inspecting volume: %w", err)
	}

	var report Report
	report.Magic = encode.DecodeSuperblockUnchecked(
		&report.Superblock,
		(*[SuperblockSize]byte)(blockZero[:SuperblockSize]),
	)
	report.MagicOK = report.Magic == SuperblockMagic
	if !report.MagicOK {
		return &report, fmt.Errorf(
			"inspecting volume: %w",
			encode.BadMagicError{Found: report.Magic},
		)
	}

	inodes := store.NewVolumeInodeStore(volume)
	if err := inodes.Get(InoRoot, &report.Root); err != nil {
		return &report, fmt.Errorf("inspecting volume: %w", err)
	}

	var dirBlock [BlockSize]byte
	if err := io.ReadBlock(
		volume,
		report.Root.DirectBlocks[0],
		dirBlock[:],
	); err != nil {
		return &report, fmt.Errorf("inspecting volume: %w", err)
	}

	handle := directory.Open(&dirBlock)
	for {
		var entry DirEntry
		if err := directory.ReadNext(&handle, &entry); err != nil {
			if err == stdio.EOF {
				break
			}
			return &report, fmt.Errorf("inspecting volume: %w", err)
		}

		var inode Inode
		if err := inodes.Get(entry.Ino, &inode); err != nil {
			return &report, fmt.Errorf(
				"inspecting volume: entry `%s`: %w",
				entry.Name,
				err,
			)
		}
		report.Entries = append(report.Entries, ReportEntry{
			Name:     entry.Name,
			Ino:      entry.Ino,
			FileType: entry.FileType,
			Size:     inode.Size,
			Blocks:   inode.BlocksUsed,
		})
	}

	return &report, nil
}
