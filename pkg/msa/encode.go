package msa

import (
	"bytes"
	"encoding/binary"
	"fmt"

	. "github.com/weberc2/mesafs/pkg/types"
)

// EncodeHeader fails rather than silently truncating a field that
// overflows its fixed buffer.
func EncodeHeader(header *Header, b *[HeaderSize]byte) error {
	p := b[:]

	binary.LittleEndian.PutUint32(p[headerMagicStart:], Magic)
	binary.LittleEndian.PutUint32(p[headerVersionStart:], Version)
	if err := putStr(p, headerNameStart, headerNameSize, header.Name); err != nil {
		return fmt.Errorf("encoding archive header name: %w", err)
	}
	if err := putStr(
		p,
		headerPkgVersionStart,
		headerPkgVersionSize,
		header.PkgVersion,
	); err != nil {
		return fmt.Errorf("encoding archive header version: %w", err)
	}
	if err := putStr(
		p,
		headerAuthorStart,
		headerAuthorSize,
		header.Author,
	); err != nil {
		return fmt.Errorf("encoding archive header author: %w", err)
	}
	if err := putStr(
		p,
		headerDescriptionStart,
		headerDescriptionSize,
		header.Description,
	); err != nil {
		return fmt.Errorf("encoding archive header description: %w", err)
	}
	binary.LittleEndian.PutUint32(p[headerNumFilesStart:], header.NumFiles)
	binary.LittleEndian.PutUint32(p[headerTotalSizeStart:], header.TotalSize)
	binary.LittleEndian.PutUint32(p[headerHeaderSizeStart:], header.HeaderSize)

	if len(header.Deps) > MaxDeps {
		return fmt.Errorf(
			"encoding archive header: `%d` dependencies: %w",
			len(header.Deps),
			TooManyDepsErr,
		)
	}
	binary.LittleEndian.PutUint16(
		p[headerNumDepsStart:],
		uint16(len(header.Deps)),
	)
	for i, dep := range header.Deps {
		if err := putStr(
			p,
			headerDepsStart+Byte(i)*headerDepSize,
			headerDepSize,
			dep,
		); err != nil {
			return fmt.Errorf("encoding archive dependency `%s`: %w", dep, err)
		}
	}

	binary.LittleEndian.PutUint32(p[headerChecksumStart:], header.Checksum)
	return nil
}

func DecodeHeader(header *Header, b *[HeaderSize]byte) error {
	p := b[:]

	magic := binary.LittleEndian.Uint32(p[headerMagicStart:])
	if magic != Magic {
		return fmt.Errorf(
			"decoding archive header: wanted magic `%#08x`; found `%#08x`: %w",
			Magic,
			magic,
			BadArchiveMagicErr,
		)
	}

	header.Name = getStr(p, headerNameStart, headerNameSize)
	header.PkgVersion = getStr(p, headerPkgVersionStart, headerPkgVersionSize)
	header.Author = getStr(p, headerAuthorStart, headerAuthorSize)
	header.Description = getStr(
		p,
		headerDescriptionStart,
		headerDescriptionSize,
	)
	header.NumFiles = binary.LittleEndian.Uint32(p[headerNumFilesStart:])
	header.TotalSize = binary.LittleEndian.Uint32(p[headerTotalSizeStart:])
	header.HeaderSize = binary.LittleEndian.Uint32(p[headerHeaderSizeStart:])

	numDeps := binary.LittleEndian.Uint16(p[headerNumDepsStart:])
	header.Deps = nil
	for i := Byte(0); i < Byte(numDeps) && i < MaxDeps; i++ {
		header.Deps = append(
			header.Deps,
			getStr(p, headerDepsStart+i*headerDepSize, headerDepSize),
		)
	}

	header.Checksum = binary.LittleEndian.Uint32(p[headerChecksumStart:])
	return nil
}

func EncodeEntry(entry *Entry, b *[EntrySize]byte) error {
	p := b[:]

	if err := putStr(p, entryPathStart, entryPathSize, entry.Path); err != nil {
		return fmt.Errorf("encoding archive entry `%s`: %w", entry.Path, err)
	}
	binary.LittleEndian.PutUint32(p[entrySizeStart:], entry.Size)
	binary.LittleEndian.PutUint32(p[entryOffsetStart:], entry.Offset)
	binary.LittleEndian.PutUint32(p[entryModeStart:], entry.Mode)
	p[entryTypeStart] = uint8(entry.Type)
	if entry.Executable {
		p[entryExecutableStart] = 1
	} else {
		p[entryExecutableStart] = 0
	}
	return nil
}

func DecodeEntry(entry *Entry, b *[EntrySize]byte) {
	p := b[:]

	entry.Path = getStr(p, entryPathStart, entryPathSize)
	entry.Size = binary.LittleEndian.Uint32(p[entrySizeStart:])
	entry.Offset = binary.LittleEndian.Uint32(p[entryOffsetStart:])
	entry.Mode = binary.LittleEndian.Uint32(p[entryModeStart:])
	entry.Type = EntryType(p[entryTypeStart])
	entry.Executable = p[entryExecutableStart] != 0
}

// putStr copies a NUL-padded string into a fixed buffer, reserving the
// final byte for the terminator.
func putStr(p []byte, start, size Byte, s string) error {
	if Byte(len(s)) > size-1 {
		return fmt.Errorf(
			"`%d` bytes into a `%d`-byte buffer: %w",
			len(s),
			size,
			FieldTooLongErr,
		)
	}
	copy(p[start:start+size], s)
	return nil
}

func getStr(p []byte, start, size Byte) string {
	buf := p[start : start+size]
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

const (
	headerMagicStart Byte = 0
	headerMagicSize  Byte = 4
	headerMagicEnd        = headerMagicStart + headerMagicSize

	headerVersionStart      = headerMagicEnd
	headerVersionSize  Byte = 4
	headerVersionEnd        = headerVersionStart + headerVersionSize

	headerNameStart      = headerVersionEnd
	headerNameSize  Byte = NameMax
	headerNameEnd        = headerNameStart + headerNameSize

	headerPkgVersionStart      = headerNameEnd
	headerPkgVersionSize  Byte = VersionMax
	headerPkgVersionEnd        = headerPkgVersionStart + headerPkgVersionSize

	headerAuthorStart      = headerPkgVersionEnd
	headerAuthorSize  Byte = NameMax
	headerAuthorEnd        = headerAuthorStart + headerAuthorSize

	headerDescriptionStart      = headerAuthorEnd
	headerDescriptionSize  Byte = DescMax
	headerDescriptionEnd        = headerDescriptionStart + headerDescriptionSize

	headerNumFilesStart      = headerDescriptionEnd
	headerNumFilesSize  Byte = 4
	headerNumFilesEnd        = headerNumFilesStart + headerNumFilesSize

	headerTotalSizeStart      = headerNumFilesEnd
	headerTotalSizeSize  Byte = 4
	headerTotalSizeEnd        = headerTotalSizeStart + headerTotalSizeSize

	headerHeaderSizeStart      = headerTotalSizeEnd
	headerHeaderSizeSize  Byte = 4
	headerHeaderSizeEnd        = headerHeaderSizeStart + headerHeaderSizeSize

	headerNumDepsStart      = headerHeaderSizeEnd
	headerNumDepsSize  Byte = 2
	headerNumDepsEnd        = headerNumDepsStart + headerNumDepsSize

	headerDepsStart      = headerNumDepsEnd
	headerDepSize   Byte = NameMax
	headerDepsSize       = headerDepSize * MaxDeps
	headerDepsEnd        = headerDepsStart + headerDepsSize

	headerChecksumStart      = headerDepsEnd
	headerChecksumSize  Byte = 4
	headerChecksumEnd        = headerChecksumStart + headerChecksumSize

	headerReservedStart      = headerChecksumEnd
	headerReservedSize  Byte = 128
	headerReservedEnd        = headerReservedStart + headerReservedSize
)

const (
	entryPathStart Byte = 0
	entryPathSize  Byte = PathMax
	entryPathEnd        = entryPathStart + entryPathSize

	entrySizeStart      = entryPathEnd
	entrySizeSize  Byte = 4
	entrySizeEnd        = entrySizeStart + entrySizeSize

	entryOffsetStart      = entrySizeEnd
	entryOffsetSize  Byte = 4
	entryOffsetEnd        = entryOffsetStart + entryOffsetSize

	entryModeStart      = entryOffsetEnd
	entryModeSize  Byte = 4
	entryModeEnd        = entryModeStart + entryModeSize

	entryTypeStart      = entryModeEnd
	entryTypeSize  Byte = 1
	entryTypeEnd        = entryTypeStart + entryTypeSize

	entryExecutableStart      = entryTypeEnd
	entryExecutableSize  Byte = 1
	entryExecutableEnd        = entryExecutableStart + entryExecutableSize

	entryReservedStart      = entryExecutableEnd
	entryReservedSize  Byte = 54
	entryReservedEnd        = entryReservedStart + entryReservedSize
)
