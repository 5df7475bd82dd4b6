package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/weberc2/mesafs/pkg/io"
	"github.com/weberc2/mesafs/pkg/mbr"
	"github.com/weberc2/mesafs/pkg/mesafs"
)

func main() {
	app := cli.App{
		Name:        "mesafs-format",
		Usage:       "format a disk image's mesafs partition",
		ArgsUsage:   "<disk.img>",
		Description: "locates the mesafs partition in the image's boot " +
			"record and writes an empty filesystem onto it",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return fmt.Errorf("wanted 1 argument (disk image); found `%d`", ctx.NArg())
			}
			imagePath := ctx.Args().Get(0)

			file, err := os.OpenFile(imagePath, os.O_RDWR, 0)
			if err != nil {
				return fmt.Errorf("opening disk image: %w", err)
			}
			defer file.Close()
			disk := io.NewFileVolume(file)

			partition, err := mbr.FindPartition(disk)
			if err != nil {
				return fmt.Errorf("formatting `%s`: %w", imagePath, err)
			}

			fs, err := mesafs.Format(
				io.NewOffsetVolume(disk, partition.Offset()),
				partition.Blocks(),
				time.Now(),
			)
			if err != nil {
				return fmt.Errorf("formatting `%s`: %w", imagePath, err)
			}

			fmt.Printf(
				"formatted `%s`: partition at sector %d, %d blocks "+
					"(%d free), %d inodes (%d free)\n",
				imagePath,
				partition.StartSector,
				fs.Superblock.TotalBlocks,
				fs.Superblock.FreeBlocks,
				fs.Superblock.TotalInodes,
				fs.Superblock.FreeInodes,
			)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
