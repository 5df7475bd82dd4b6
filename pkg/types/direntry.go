package types

const (
	DirEntrySize       Byte = 64
	DirEntryNameBufLen      = 58
	MaxNameLen              = 56
	DirEntriesPerBlock      = int(BlockSize / DirEntrySize)
)

// DirEntry is one fixed-size slot in a directory's data block. A slot
// with Ino == InoNil is free.
type DirEntry struct {
	Ino      Ino
	FileType FileType
	NameLen  uint8
	Name     string
}
