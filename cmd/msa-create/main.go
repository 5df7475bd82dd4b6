package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/weberc2/mesafs/pkg/msa"
)

func main() {
	app := cli.App{
		Name:      "msa-create",
		Usage:     "pack a directory tree into an archive container",
		ArgsUsage: "<source-dir> <output.msa>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "package name",
			},
			&cli.StringFlag{
				Name:    "pkg-version",
				Aliases: []string{"v"},
				Usage:   "package version",
			},
			&cli.StringFlag{
				Name:    "author",
				Aliases: []string{"a"},
				Usage:   "author name",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "package description",
			},
			&cli.StringSliceFlag{
				Name:    "dep",
				Aliases: []string{"D"},
				Usage:   "add a dependency (repeatable)",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "install prefix",
			},
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage: "manifest file (default: `" + manifestName +
					"` in the source directory)",
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 2 {
				return fmt.Errorf(
					"wanted 2 arguments (source dir, output file); "+
						"found `%d`",
					ctx.NArg(),
				)
			}
			sourceDir := ctx.Args().Get(0)
			outputFile := ctx.Args().Get(1)

			config, err := LoadConfig(ctx.String("manifest"), sourceDir)
			if err != nil {
				return err
			}
			if s := ctx.String("name"); s != "" {
				config.Name = s
			}
			if s := ctx.String("pkg-version"); s != "" {
				config.Version = s
			}
			if s := ctx.String("author"); s != "" {
				config.Author = s
			}
			if s := ctx.String("description"); s != "" {
				config.Description = s
			}
			if s := ctx.StringSlice("dep"); len(s) > 0 {
				config.Deps = s
			}
			if s := ctx.String("prefix"); s != "" {
				config.Prefix = s
			}
			if err := config.Validate(); err != nil {
				return err
			}

			files, err := msa.ScanDir(sourceDir, config.Prefix)
			if err != nil {
				return fmt.Errorf("packing `%s`: %w", sourceDir, err)
			}

			archive, err := msa.NewArchive(&msa.PackageParams{
				Name:        config.Name,
				Version:     config.Version,
				Author:      config.Author,
				Description: config.Description,
				Deps:        config.Deps,
			}, files)
			if err != nil {
				return fmt.Errorf("packing `%s`: %w", sourceDir, err)
			}

			data, err := archive.Encode()
			if err != nil {
				return fmt.Errorf("packing `%s`: %w", sourceDir, err)
			}

			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return fmt.Errorf("writing `%s`: %w", outputFile, err)
			}

			fmt.Printf(
				"packed `%s` v%s: %d entries, %d payload bytes, %d total "+
					"(checksum %#08x)\n",
				config.Name,
				config.Version,
				archive.Header.NumFiles,
				archive.Header.TotalSize,
				len(data),
				archive.Header.Checksum,
			)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
