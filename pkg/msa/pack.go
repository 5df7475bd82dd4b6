package msa

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	. "github.com/weberc2/mesafs/pkg/types"
)

// PackageParams names the package-level metadata for a new archive.
type PackageParams struct {
	Name        string
	Version     string
	Author      string
	Description string
	Deps        []string
}

// Archive is a fully laid out container, ready to encode.
type Archive struct {
	Header Header
	Files  []File
}

// NewArchive lays out the container: entries in file order, payload
// offsets assigned sequentially after the header and entry table.
func NewArchive(params *PackageParams, files []File) (*Archive, error) {
	if len(files) > MaxFiles {
		return nil, fmt.Errorf(
			"laying out archive `%s`: `%d` files: %w",
			params.Name,
			len(files),
			TooManyFilesErr,
		)
	}
	if len(params.Deps) > MaxDeps {
		return nil, fmt.Errorf(
			"laying out archive `%s`: `%d` dependencies: %w",
			params.Name,
			len(params.Deps),
			TooManyDepsErr,
		)
	}

	headerSize := uint32(HeaderSize) + uint32(len(files))*uint32(EntrySize)
	offset := headerSize
	var totalSize uint32
	for i := range files {
		if files[i].Entry.Type != EntryTypeFile {
			continue
		}
		files[i].Entry.Offset = offset
		offset += files[i].Entry.Size
		totalSize += files[i].Entry.Size
	}

	return &Archive{
		Header: Header{
			Name:        params.Name,
			PkgVersion:  params.Version,
			Author:      params.Author,
			Description: params.Description,
			NumFiles:    uint32(len(files)),
			TotalSize:   totalSize,
			HeaderSize:  headerSize,
			Deps:        params.Deps,
		},
		Files: files,
	}, nil
}

// Encode serializes the whole container and patches the header's
// checksum: a CRC32 (IEEE polynomial) of the entire container computed
// with the checksum field still zero.
func (archive *Archive) Encode() ([]byte, error) {
	size := Byte(archive.Header.HeaderSize)
	for i := range archive.Files {
		size += Byte(len(archive.Files[i].Data))
	}
	out := make([]byte, size)

	archive.Header.Checksum = 0
	if err := EncodeHeader(
		&archive.Header,
		(*[HeaderSize]byte)(out[:HeaderSize]),
	); err != nil {
		return nil, fmt.Errorf("encoding archive: %w", err)
	}

	for i := range archive.Files {
		start := HeaderSize + Byte(i)*EntrySize
		if err := EncodeEntry(
			&archive.Files[i].Entry,
			(*[EntrySize]byte)(out[start:start+EntrySize]),
		); err != nil {
			return nil, fmt.Errorf("encoding archive: %w", err)
		}
	}

	for i := range archive.Files {
		entry := &archive.Files[i].Entry
		if entry.Type != EntryTypeFile {
			continue
		}
		copy(out[entry.Offset:], archive.Files[i].Data)
	}

	archive.Header.Checksum = crc32.ChecksumIEEE(out)
	putChecksum(out, archive.Header.Checksum)
	return out, nil
}

// Checksum recomputes a container's checksum: the stored field is
// zeroed for the computation, as it was when the container was packed.
func Checksum(container []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write(container[:headerChecksumStart])
	crc.Write(make([]byte, headerChecksumSize))
	crc.Write(container[headerChecksumEnd:])
	return crc.Sum32()
}

func putChecksum(container []byte, checksum uint32) {
	binary.LittleEndian.PutUint32(container[headerChecksumStart:], checksum)
}
