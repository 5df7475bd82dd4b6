package mbr

import (
	"encoding/binary"
	"fmt"

	"github.com/weberc2/mesafs/pkg/io"
	. "github.com/weberc2/mesafs/pkg/types"
)

// The boot record's partition table is four 16-byte entries at a fixed
// offset. The volume lives in the first entry whose partition-type byte
// matches PartitionType; its start-sector and sector-count fields give
// the byte offset and extent of the volume.

const (
	PartitionType uint8 = 0x77

	bootRecordSize       = 512
	partitionTableStart  = 446
	partitionEntrySize   = 16
	partitionEntryCount  = 4
	partitionTypeOffset  = 4
	partitionLBAOffset   = 8
	partitionCountOffset = 12
)

const NoPartitionErr ConstError = "no matching partition in boot record"

// Partition describes the located volume extent.
type Partition struct {
	StartSector uint32
	Sectors     uint32
}

func (p Partition) Offset() Byte { return Byte(p.StartSector) * SectorSize }

func (p Partition) Blocks() Block { return Block(p.Sectors / SectorsPerBlock) }

// FindPartition scans the boot record at the start of the storage for the
// volume's partition entry.
func FindPartition(r io.ReadAt) (Partition, error) {
	var bootRecord [bootRecordSize]byte
	if err := r.ReadAt(0, bootRecord[:]); err != nil {
		return Partition{}, fmt.Errorf("reading boot record: %w", err)
	}

	for i := 0; i < partitionEntryCount; i++ {
		entry := bootRecord[partitionTableStart+i*partitionEntrySize:]
		if entry[partitionTypeOffset] != PartitionType {
			continue
		}
		return Partition{
			StartSector: binary.LittleEndian.Uint32(entry[partitionLBAOffset:]),
			Sectors:     binary.LittleEndian.Uint32(entry[partitionCountOffset:]),
		}, nil
	}

	return Partition{}, fmt.Errorf(
		"scanning boot record for partition type `%#02x`: %w",
		PartitionType,
		NoPartitionErr,
	)
}
