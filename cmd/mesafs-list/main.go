package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/weberc2/mesafs/pkg/io"
	"github.com/weberc2/mesafs/pkg/mbr"
	"github.com/weberc2/mesafs/pkg/mesafs"
)

func main() {
	app := cli.App{
		Name:      "mesafs-list",
		Usage:     "list the contents of a mesafs volume",
		ArgsUsage: "<disk.img>",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return fmt.Errorf(
					"wanted 1 argument (disk image); found `%d`",
					ctx.NArg(),
				)
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
				return fmt.Errorf("listing `%s`: %w", imagePath, err)
			}

			report, err := mesafs.Inspect(
				io.NewOffsetVolume(disk, partition.Offset()),
			)
			if report != nil {
				printReport(report)
			}
			if err != nil {
				return fmt.Errorf("listing `%s`: %w", imagePath, err)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func printReport(report *mesafs.Report) {
	fmt.Printf("magic:         %#08x", report.Magic)
	if !report.MagicOK {
		fmt.Printf(" (INVALID)")
	}
	fmt.Printf("\n")
	fmt.Printf("version:       %d\n", report.Superblock.Version)
	fmt.Printf("block size:    %d\n", report.Superblock.BlockSize)
	fmt.Printf(
		"blocks:        %d (%d free)\n",
		report.Superblock.TotalBlocks,
		report.Superblock.FreeBlocks,
	)
	fmt.Printf(
		"inodes:        %d (%d free)\n",
		report.Superblock.TotalInodes,
		report.Superblock.FreeInodes,
	)

	if !report.MagicOK {
		return
	}

	fmt.Printf("\n%-56s %8s %8s %8s\n", "NAME", "INO", "SIZE", "BLOCKS")
	for i := range report.Entries {
		entry := &report.Entries[i]
		fmt.Printf(
			"%-56s %8d %8d %8d\n",
			entry.Name,
			entry.Ino,
			entry.Size,
			entry.Blocks,
		)
	}
	fmt.Printf("\n%d files\n", len(report.Entries))
}
