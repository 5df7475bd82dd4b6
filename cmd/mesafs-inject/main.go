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
		Name:      "mesafs-inject",
		Usage:     "copy a host file into a mesafs volume",
		ArgsUsage: "<disk.img> <source-file> <dest-path>",
		Description: "writes the source file's contents into the image's " +
			"mesafs partition and links it into the root directory under " +
			"the destination path's final segment",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 3 {
				return fmt.Errorf(
					"wanted 3 arguments (disk image, source file, dest "+
						"path); found `%d`",
					ctx.NArg(),
				)
			}
			imagePath := ctx.Args().Get(0)
			sourcePath := ctx.Args().Get(1)
			destPath := ctx.Args().Get(2)

			data, err := os.ReadFile(sourcePath)
			if err != nil {
				return fmt.Errorf("reading source file: %w", err)
			}

			file, err := os.OpenFile(imagePath, os.O_RDWR, 0)
			if err != nil {
				return fmt.Errorf("opening disk image: %w", err)
			}
			defer file.Close()
			disk := io.NewFileVolume(file)

			partition, err := mbr.FindPartition(disk)
			if err != nil {
				return fmt.Errorf("injecting into `%s`: %w", imagePath, err)
			}

			fs, err := mesafs.Load(
				io.NewOffsetVolume(disk, partition.Offset()),
			)
			if err != nil {
				return fmt.Errorf("injecting into `%s`: %w", imagePath, err)
			}

			inode, err := fs.Inject(data, destPath, time.Now())
			if err != nil {
				return fmt.Errorf("injecting into `%s`: %w", imagePath, err)
			}

			fmt.Printf(
				"injected `%s` as `%s`: inode %d, %d bytes in %d blocks\n",
				sourcePath,
				destPath,
				inode.Ino,
				inode.Size,
				inode.BlocksUsed,
			)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
