package mbr

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/weberc2/mesafs/pkg/io"
	. "github.com/weberc2/mesafs/pkg/types"
)

func bootRecord(entries ...Partition) []byte {
	disk := make([]byte, BlockSize)
	for i, partition := range entries {
		entry := disk[partitionTableStart+i*partitionEntrySize:]
		entry[partitionTypeOffset] = PartitionType
		binary.LittleEndian.PutUint32(
			entry[partitionLBAOffset:],
			partition.StartSector,
		)
		binary.LittleEndian.PutUint32(
			entry[partitionCountOffset:],
			partition.Sectors,
		)
	}
	return disk
}

func TestFindPartition(t *testing.T) {
	wanted := Partition{StartSector: 2048, Sectors: 8192}
	found, err := FindPartition(io.NewBuffer(bootRecord(wanted)))
	if err != nil {
		t.Fatalf("finding partition: unexpected err: %v", err)
	}
	if wanted != found {
		t.Fatalf("wanted `%+v`; found `%+v`", wanted, found)
	}

	if wantedOffset := Byte(2048) * SectorSize; found.Offset() != wantedOffset {
		t.Fatalf(
			"offset: wanted `%d`; found `%d`",
			wantedOffset,
			found.Offset(),
		)
	}
	if wantedBlocks := Block(8192 / 8); found.Blocks() != wantedBlocks {
		t.Fatalf(
			"blocks: wanted `%d`; found `%d`",
			wantedBlocks,
			found.Blocks(),
		)
	}
}

func TestFindPartition_SkipsForeignEntries(t *testing.T) {
	disk := bootRecord(
		Partition{StartSector: 64, Sectors: 128},
		Partition{StartSector: 2048, Sectors: 8192},
	)
	// first entry is some other partition type
	disk[partitionTableStart+partitionTypeOffset] = 0x83

	found, err := FindPartition(io.NewBuffer(disk))
	if err != nil {
		t.Fatalf("finding partition: unexpected err: %v", err)
	}
	if wanted := (Partition{StartSector: 2048, Sectors: 8192}); wanted != found {
		t.Fatalf("wanted `%+v`; found `%+v`", wanted, found)
	}
}

func TestFindPartition_NoMatch(t *testing.T) {
	_, err := FindPartition(io.NewBuffer(make([]byte, BlockSize)))
	if !errors.Is(err, NoPartitionErr) {
		t.Fatalf("wanted `NoPartitionErr`; found: %v", err)
	}
}
