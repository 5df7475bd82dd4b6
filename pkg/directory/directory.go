package directory

import (
	"fmt"
	"io"

	"github.com/weberc2/mesafs/pkg/encode"
	. "github.com/weberc2/mesafs/pkg/types"
)

// A directory's contents are a single data block holding a packed array
// of fixed-size entry slots. A slot whose inode field is zero is free;
// there is no compaction, removal, or block chaining.

const (
	DirectoryFullErr ConstError = "no free directory slot"
	NameTooLongErr   ConstError = "name too long"
)

// FreeSlot returns the index of the first free slot in the directory
// block, or DirectoryFullErr when every slot is occupied.
func FreeSlot(block *[BlockSize]byte) (int, error) {
	for slot := 0; slot < DirEntriesPerBlock; slot++ {
		var entry DirEntry
		decodeSlot(block, slot, &entry)
		if entry.Ino == InoNil {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("finding free directory slot: %w", DirectoryFullErr)
}

// PutEntry writes an entry for `ino` into the given slot in place.
func PutEntry(
	block *[BlockSize]byte,
	slot int,
	ino Ino,
	fileType FileType,
	name string,
) error {
	if len(name) > MaxNameLen {
		return fmt.Errorf(
			"inserting entry `%s` for inode `%d`: %w",
			name,
			ino,
			NameTooLongErr,
		)
	}

	encodeSlot(block, slot, &DirEntry{
		Ino:      ino,
		FileType: fileType,
		NameLen:  uint8(len(name)),
		Name:     name,
	})
	return nil
}

// Handle is a restartable cursor over a directory block's occupied slots.
type Handle struct {
	block *[BlockSize]byte
	slot  int
}

func Open(block *[BlockSize]byte) Handle {
	return Handle{block: block}
}

// ReadNext yields the next occupied entry in slot order, or io.EOF once
// the block is exhausted.
func ReadNext(h *Handle, entry *DirEntry) error {
	for h.slot < DirEntriesPerBlock {
		decodeSlot(h.block, h.slot, entry)
		h.slot++
		if entry.Ino == InoNil {
			continue
		}
		return nil
	}
	return io.EOF
}

func decodeSlot(block *[BlockSize]byte, slot int, entry *DirEntry) {
	start := Byte(slot) * DirEntrySize
	encode.DecodeDirEntry(
		entry,
		(*[DirEntrySize]byte)(block[start:start+DirEntrySize]),
	)
}

func encodeSlot(block *[BlockSize]byte, slot int, entry *DirEntry) {
	start := Byte(slot) * DirEntrySize
	encode.EncodeDirEntry(
		entry,
		(*[DirEntrySize]byte)(block[start:start+DirEntrySize]),
	)
}
