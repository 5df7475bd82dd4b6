package encode

import (
	. "github.com/weberc2/mesafs/pkg/types"
)

func EncodeDirEntry(entry *DirEntry, b *[DirEntrySize]byte) {
	p := b[:]

	putIno(p, dirEntryInoStart, entry.Ino)
	putU8(p, dirEntryFileTypeStart, uint8(entry.FileType))
	putU8(p, dirEntryNameLenStart, entry.NameLen)

	n := copy(p[dirEntryNameStart:], entry.Name)
	for i := dirEntryNameStart + Byte(n); i < DirEntrySize; i++ {
		p[i] = 0
	}
}

func DecodeDirEntry(entry *DirEntry, b *[DirEntrySize]byte) {
	p := b[:]

	entry.Ino = getIno(p, dirEntryInoStart)
	entry.FileType = FileType(getU8(p, dirEntryFileTypeStart))
	entry.NameLen = getU8(p, dirEntryNameLenStart)

	// the name buffer is bounded but not necessarily terminated
	nameLen := Byte(entry.NameLen)
	if nameLen > DirEntrySize-dirEntryNameStart {
		nameLen = DirEntrySize - dirEntryNameStart
	}
	entry.Name = string(p[dirEntryNameStart : dirEntryNameStart+nameLen])
}

const (
	dirEntryInoStart Byte = 0
	dirEntryInoSize  Byte = 4
	dirEntryInoEnd        = dirEntryInoStart + dirEntryInoSize

	dirEntryFileTypeStart      = dirEntryInoEnd
	dirEntryFileTypeSize  Byte = 1
	dirEntryFileTypeEnd        = dirEntryFileTypeStart + dirEntryFileTypeSize

	dirEntryNameLenStart      = dirEntryFileTypeEnd
	dirEntryNameLenSize  Byte = 1
	dirEntryNameLenEnd        = dirEntryNameLenStart + dirEntryNameLenSize

	dirEntryNameStart = dirEntryNameLenEnd
)
