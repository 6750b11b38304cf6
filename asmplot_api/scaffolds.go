package asmplot_api

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// A struct representing a run of N characters in an assembly sequence,
// as a 0-based half-open interval
type NStretch struct {
	// The name of the sequence the stretch was found in
	Chrom string

	// The 0-based start of the stretch
	Start int64

	// The end of the stretch
	End int64
}

// scanFasta scans FASTA sequences for maximal runs of N (case-insensitive)
// and returns them in sequence order
func scanFasta(r io.Reader) ([]NStretch, error) {
	var stretches []NStretch
	var chrom string
	var pos int64
	runStart := int64(-1)

	flush := func() {
		if runStart >= 0 {
			stretches = append(stretches, NStretch{Chrom: chrom, Start: runStart, End: pos})
			runStart = -1
		}
	}

	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("FASTA header without a sequence name")
			}
			chrom = fields[0]
			pos = 0
			continue
		}
		if chrom == "" {
			return nil, fmt.Errorf("sequence data before the first FASTA header")
		}
		for i := 0; i < len(line); i++ {
			if line[i] == 'N' || line[i] == 'n' {
				if runStart < 0 {
					runStart = pos
				}
			} else {
				flush()
			}
			pos++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return stretches, nil
}

// writeScaffoldBed writes N stretches as BED records named N_stretch
func writeScaffoldBed(stretches []NStretch, w io.Writer) error {
	for _, stretch := range stretches {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\tN_stretch\n", stretch.Chrom, stretch.Start, stretch.End); err != nil {
			return err
		}
	}
	return nil
}

// Read a FASTA file, transparently decompressing gzipped inputs, and return
// all N stretches
func ReadFastaScaffolds(file string) []NStretch {
	logger := log.New(os.Stderr, "", 0)

	openFile, err := os.Open(file)
	if err != nil {
		logger.Fatal(err)
	}
	defer openFile.Close()

	reader := io.Reader(openFile)
	if strings.HasSuffix(file, ".gz") {
		gzReader, err := gzip.NewReader(openFile)
		if err != nil {
			logger.Fatal(err)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	stretches, err := scanFasta(reader)
	if err != nil {
		logger.Fatalf("Failed to scan %s: %v", file, err)
	}
	return stretches
}
