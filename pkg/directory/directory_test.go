package directory

import (
	"errors"
	stdio "io"
	"strings"
	"testing"

	. "github.com/weberc2/mesafs/pkg/types"
)

func TestFreeSlot(t *testing.T) {
	var block [BlockSize]byte

	slot, err := FreeSlot(&block)
	if err != nil {
		t.Fatalf("empty directory: unexpected err: %v", err)
	}
	if slot != 0 {
		t.Fatalf("empty directory: wanted slot `0`; found `%d`", slot)
	}

	// occupy the first two slots; the third is next
	for i := 0; i < 2; i++ {
		if err := PutEntry(
			&block,
			i,
			Ino(i+2),
			FileTypeRegular,
			"file",
		); err != nil {
			t.Fatalf("inserting entry: unexpected err: %v", err)
		}
	}
	slot, err = FreeSlot(&block)
	if err != nil {
		t.Fatalf("partially full directory: unexpected err: %v", err)
	}
	if slot != 2 {
		t.Fatalf("wanted slot `2`; found `%d`", slot)
	}
}

func TestFreeSlot_Full(t *testing.T) {
	var block [BlockSize]byte
	for i := 0; i < DirEntriesPerBlock; i++ {
		if err := PutEntry(
			&block,
			i,
			Ino(i+2),
			FileTypeRegular,
			"file",
		); err != nil {
			t.Fatalf("inserting entry: unexpected err: %v", err)
		}
	}

	if _, err := FreeSlot(&block); !errors.Is(err, DirectoryFullErr) {
		t.Fatalf("wanted `DirectoryFullErr`; found: %v", err)
	}
}

func TestPutEntry_NameTooLong(t *testing.T) {
	var block [BlockSize]byte
	err := PutEntry(
		&block,
		0,
		2,
		FileTypeRegular,
		strings.Repeat("x", MaxNameLen+1),
	)
	if !errors.Is(err, NameTooLongErr) {
		t.Fatalf("wanted `NameTooLongErr`; found: %v", err)
	}

	// exactly MaxNameLen is fine
	if err := PutEntry(
		&block,
		0,
		2,
		FileTypeRegular,
		strings.Repeat("x", MaxNameLen),
	); err != nil {
		t.Fatalf("max-length name: unexpected err: %v", err)
	}
}

func TestReadNext_SkipsFreeSlots(t *testing.T) {
	var block [BlockSize]byte

	// entries in slots 1 and 3; 0 and 2 free
	if err := PutEntry(&block, 1, 5, FileTypeRegular, "one"); err != nil {
		t.Fatalf("inserting entry: unexpected err: %v", err)
	}
	if err := PutEntry(&block, 3, 9, FileTypeDir, "two"); err != nil {
		t.Fatalf("inserting entry: unexpected err: %v", err)
	}

	handle := Open(&block)
	var found []DirEntry
	for {
		var entry DirEntry
		if err := ReadNext(&handle, &entry); err != nil {
			if err == stdio.EOF {
				break
			}
			t.Fatalf("reading directory: unexpected err: %v", err)
		}
		found = append(found, entry)
	}

	wanted := []DirEntry{{
		Ino:      5,
		FileType: FileTypeRegular,
		NameLen:  3,
		Name:     "one",
	}, {
		Ino:      9,
		FileType: FileTypeDir,
		NameLen:  3,
		Name:     "two",
	}}
	if len(found) != len(wanted) {
		t.Fatalf("wanted `%d` entries; found `%d`", len(wanted), len(found))
	}
	for i := range wanted {
		if wanted[i] != found[i] {
			t.Fatalf(
				"entry `%d`: wanted `%+v`; found `%+v`",
				i,
				wanted[i],
				found[i],
			)
		}
	}
}
