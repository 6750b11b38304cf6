package asmplot_api

import (
	"bufio"
	"log"
	"os"

	cli "github.com/urfave/cli/v2"
)

// Plot reads the alignment, color and region files and renders the plot
func Plot(Cctx *cli.Context) {
	logger := log.New(os.Stderr, "", 0)

	genome := DefaultGenome()
	if Cctx.String("genome") != "" {
		genome = ReadGenome(Cctx)
	}

	inputFiles := Cctx.StringSlice("input")
	colorFiles := Cctx.StringSlice("colors")
	minLength := Cctx.Int64("min-length")

	sources := make([]AlignmentSource, 0, len(inputFiles))
	for i, file := range inputFiles {
		var alignments []Alignment
		if isPafFile(file) {
			for _, pafAlignment := range ReadPaf(file, minLength) {
				alignment, err := pafAlignment.Alignment()
				if err != nil {
					logger.Fatalf("Failed to read PAF alignments from %s: %v", file, err)
				}
				alignments = append(alignments, alignment)
			}
		} else {
			alignments = ReadTabFile(file)
		}
		sources = append(sources, AlignmentSource{
			Alignments: alignments,
			Colors:     ReadColorLookup(colorFiles[i]),
		})
	}

	var regions []Region
	if Cctx.String("bed") != "" {
		regions = ReadBedFile(Cctx.String("bed"))
	}

	rects, err := Layout(genome, sources, regions)
	if err != nil {
		logger.Fatal(err)
	}

	if err := RenderPNG(genome, rects, Cctx.String("output")); err != nil {
		logger.Fatalf("Failed to write the plot to %s: %v", Cctx.String("output"), err)
	}
}

// ConvertPaf filters a PAF file and writes the retained alignments in the
// tabular alignment format
func ConvertPaf(Cctx *cli.Context) {
	logger := log.New(os.Stderr, "", 0)

	alignments := ReadPaf(Cctx.String("paf"), Cctx.Int64("min-length"))

	output := os.Stdout
	if Cctx.String("output") != "" {
		outputFile, err := os.Create(Cctx.String("output"))
		if err != nil {
			logger.Fatalf("Failed to create the output file: %v", err)
		}
		defer outputFile.Close()
		output = outputFile
	}

	writer := bufio.NewWriter(output)
	if err := writeTabRecords(alignments, writer); err != nil {
		logger.Fatalf("Failed to write the output file: %v", err)
	}
	if err := writer.Flush(); err != nil {
		logger.Fatalf("Failed to write the output file: %v", err)
	}
}

// Scaffolds scans a FASTA file for N stretches and writes them as BED
func Scaffolds(Cctx *cli.Context) {
	logger := log.New(os.Stderr, "", 0)

	stretches := ReadFastaScaffolds(Cctx.String("fasta"))

	outputFile, err := os.Create(Cctx.String("bed"))
	if err != nil {
		logger.Fatalf("Failed to create the output file: %v", err)
	}
	defer outputFile.Close()

	writer := bufio.NewWriter(outputFile)
	if err := writeScaffoldBed(stretches, writer); err != nil {
		logger.Fatalf("Failed to write the BED file: %v", err)
	}
	if err := writer.Flush(); err != nil {
		logger.Fatalf("Failed to write the BED file: %v", err)
	}
}
