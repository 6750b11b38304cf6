package main

import (
	"log"
	"os"

	"github.com/juklucas/asmplot/asmplot_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "asmplot",
		Usage:           "A tool to visualize genome assembly alignments against a reference chromosome set",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Commands: []*cli.Command{
			{
				Name:  "plot",
				Usage: "Plot alignments (and optional BED regions) onto the reference chromosomes",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "The input alignment file(s). Files ending in .paf(.gz) are parsed as PAF, all others as the tabular alignment format",
						Required: true,
						Category: "Required",
					},
					&cli.StringSliceFlag{
						Name:     "colors",
						Aliases:  []string{"c"},
						Usage:    "The color lookup TSV file(s), one per input file in the same order",
						Required: true,
						Category: "Required",
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "The location of the output PNG file",
						Required: true,
						Category: "Required",
					},
					&cli.StringFlag{
						Name:     "bed",
						Aliases:  []string{"b"},
						Usage:    "A BED file with genomic regions to overlay on the chromosomes",
						Category: "Optional",
					},
					&cli.StringFlag{
						Name:     "genome",
						Aliases:  []string{"g"},
						Usage:    "A YAML file with chromosome names and lengths, replacing the built-in CHM13 catalog",
						Category: "Optional",
					},
					&cli.Int64Flag{
						Name:     "min-length",
						Aliases:  []string{"l"},
						Usage:    "The minimum alignment block length for PAF inputs",
						Value:    100000,
						Category: "Optional",
						Action: func(c *cli.Context, input int64) error {
							if input < 0 {
								return cli.Exit("Invalid min-length, must be zero or positive", 1)
							}
							return nil
						},
					},
				},
				Action: func(Cctx *cli.Context) error {
					if len(Cctx.StringSlice("input")) != len(Cctx.StringSlice("colors")) {
						return cli.Exit("The number of color files must match the number of input files", 1)
					}
					asmplot_api.Plot(Cctx)
					return nil
				},
			},
			{
				Name:  "paf",
				Usage: "Filter a PAF file and write the primary alignments as a tabular alignment file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "paf",
						Aliases:  []string{"p"},
						Usage:    "The input PAF file",
						Required: true,
						Category: "Required",
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "The location of the output file, defaults to stdout",
						Category: "Optional",
					},
					&cli.Int64Flag{
						Name:     "min-length",
						Aliases:  []string{"l"},
						Usage:    "The minimum alignment block length",
						Value:    100000,
						Category: "Optional",
						Action: func(c *cli.Context, input int64) error {
							if input < 0 {
								return cli.Exit("Invalid min-length, must be zero or positive", 1)
							}
							return nil
						},
					},
				},
				Action: func(Cctx *cli.Context) error {
					asmplot_api.ConvertPaf(Cctx)
					return nil
				},
			},
			{
				Name:  "scaffolds",
				Usage: "Scan FASTA sequences for stretches of N and write them as a BED file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "fasta",
						Aliases:  []string{"f"},
						Usage:    "The input FASTA file (.gz supported)",
						Required: true,
						Category: "Required",
					},
					&cli.StringFlag{
						Name:     "bed",
						Aliases:  []string{"b"},
						Usage:    "The location of the output BED file",
						Required: true,
						Category: "Required",
					},
				},
				Action: func(Cctx *cli.Context) error {
					asmplot_api.Scaffolds(Cctx)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}
