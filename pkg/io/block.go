package io

import (
	"fmt"

	. "github.com/weberc2/mesafs/pkg/types"
)

// ReadBlock fills buf with the contents of the given block. buf must be
// exactly one block long.
func ReadBlock(r ReadAt, block Block, buf []byte) error {
	if Byte(len(buf)) != BlockSize {
		return fmt.Errorf(
			"reading block `%d`: buffer size `%d` != block size `%d`",
			block,
			len(buf),
			BlockSize,
		)
	}
	if err := r.ReadAt(Byte(block)*BlockSize, buf); err != nil {
		return fmt.Errorf("reading block `%d`: %w", block, err)
	}
	return nil
}

// WriteBlock writes buf as the contents of the given block. buf must be
// exactly one block long.
func WriteBlock(w WriteAt, block Block, buf []byte) error {
	if Byte(len(buf)) != BlockSize {
		return fmt.Errorf(
			"writing block `%d`: buffer size `%d` != block size `%d`",
			block,
			len(buf),
			BlockSize,
		)
	}
	if err := w.WriteAt(Byte(block)*BlockSize, buf); err != nil {
		return fmt.Errorf("writing block `%d`: %w", block, err)
	}
	return nil
}
