package msa

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func testFiles() []File {
	return []File{{
		Entry: Entry{
			Path: "/bin",
			Mode: 0o755,
			Type: EntryTypeDir,
		},
	}, {
		Entry: Entry{
			Path:       "/bin/hello",
			Size:       5,
			Mode:       0o755,
			Type:       EntryTypeFile,
			Executable: true,
		},
		Data: []byte("hello"),
	}, {
		Entry: Entry{
			Path: "/readme",
			Size: 3,
			Mode: 0o644,
			Type: EntryTypeFile,
		},
		Data: []byte("hi\n"),
	}}
}

func TestNewArchive_Layout(t *testing.T) {
	archive, err := NewArchive(&PackageParams{
		Name:    "hello",
		Version: "1.0.0",
	}, testFiles())
	if err != nil {
		t.Fatalf("laying out archive: unexpected err: %v", err)
	}

	wantedHeaderSize := uint32(HeaderSize) + 3*uint32(EntrySize)
	if archive.Header.HeaderSize != wantedHeaderSize {
		t.Fatalf(
			"header size: wanted `%d`; found `%d`",
			wantedHeaderSize,
			archive.Header.HeaderSize,
		)
	}
	if archive.Header.NumFiles != 3 {
		t.Fatalf(
			"num files: wanted `3`; found `%d`",
			archive.Header.NumFiles,
		)
	}
	if archive.Header.TotalSize != 8 {
		t.Fatalf(
			"total size: wanted `8`; found `%d`",
			archive.Header.TotalSize,
		)
	}

	// payload offsets are sequential after the entry table; directories
	// claim none
	if archive.Files[0].Entry.Offset != 0 {
		t.Fatalf(
			"dir offset: wanted `0`; found `%d`",
			archive.Files[0].Entry.Offset,
		)
	}
	if archive.Files[1].Entry.Offset != wantedHeaderSize {
		t.Fatalf(
			"first payload offset: wanted `%d`; found `%d`",
			wantedHeaderSize,
			archive.Files[1].Entry.Offset,
		)
	}
	if wanted := wantedHeaderSize + 5; archive.Files[2].Entry.Offset != wanted {
		t.Fatalf(
			"second payload offset: wanted `%d`; found `%d`",
			wanted,
			archive.Files[2].Entry.Offset,
		)
	}
}

func TestArchive_Encode(t *testing.T) {
	archive, err := NewArchive(&PackageParams{
		Name:        "hello",
		Version:     "1.0.0",
		Author:      "mesa",
		Description: "greeting",
		Deps:        []string{"libc"},
	}, testFiles())
	if err != nil {
		t.Fatalf("laying out archive: unexpected err: %v", err)
	}

	container, err := archive.Encode()
	if err != nil {
		t.Fatalf("encoding archive: unexpected err: %v", err)
	}

	if wanted := int(archive.Header.HeaderSize) + 8; len(container) != wanted {
		t.Fatalf(
			"container length: wanted `%d`; found `%d`",
			wanted,
			len(container),
		)
	}

	if magic := binary.LittleEndian.Uint32(container); magic != Magic {
		t.Fatalf("magic: wanted `%#08x`; found `%#08x`", Magic, magic)
	}

	// payloads land at their entries' offsets
	hello := archive.Files[1].Entry
	if !bytes.Equal(
		container[hello.Offset:hello.Offset+hello.Size],
		[]byte("hello"),
	) {
		t.Fatal("first payload: wanted `hello`; found something else")
	}

	// the stored checksum covers the container with the field zeroed
	var header Header
	if err := DecodeHeader(
		&header,
		(*[HeaderSize]byte)(container[:HeaderSize]),
	); err != nil {
		t.Fatalf("decoding header: unexpected err: %v", err)
	}
	if header.Checksum == 0 {
		t.Fatal("checksum: wanted non-zero; found `0`")
	}
	if wanted := Checksum(container); header.Checksum != wanted {
		t.Fatalf(
			"checksum: wanted `%#08x`; found `%#08x`",
			wanted,
			header.Checksum,
		)
	}

	// the entry table round-trips
	var entry Entry
	DecodeEntry(
		&entry,
		(*[EntrySize]byte)(container[HeaderSize+EntrySize:HeaderSize+2*EntrySize]),
	)
	if entry != hello {
		t.Fatalf("entry: wanted `%+v`; found `%+v`", hello, entry)
	}
}

func TestNewArchive_TooManyDeps(t *testing.T) {
	deps := make([]string, MaxDeps+1)
	for i := range deps {
		deps[i] = "dep"
	}
	if _, err := NewArchive(&PackageParams{
		Name: "hello",
		Deps: deps,
	}, nil); err == nil {
		t.Fatal("wanted err; found `nil`")
	}
}
