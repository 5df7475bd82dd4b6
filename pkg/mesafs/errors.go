package mesafs

import (
	. "github.com/weberc2/mesafs/pkg/types"
)

const (
	// FileTooLargeErr means the payload needs more blocks than an inode's
	// direct pointers can address. There is no indirect-block spillover.
	FileTooLargeErr ConstError = "file exceeds direct block capacity"

	OutOfInosErr   ConstError = "no free inodes"
	OutOfBlocksErr ConstError = "no free data blocks"

	// VolumeTooSmallErr means the volume can't hold the metadata region
	// plus the root directory's data block.
	VolumeTooSmallErr ConstError = "volume too small"

	BadDestPathErr ConstError = "destination path has no final segment"
)
