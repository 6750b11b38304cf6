package asmplot_api

import (
	"io"
	"log"
	"os"
	"strings"
)

// readLookupRecords reads the first two columns of a tab-separated table
// into a lookup. Rows with fewer than two columns are skipped; a repeated
// key keeps the value of the last row.
func readLookupRecords(r io.Reader) (ColorLookup, error) {
	lookup := ColorLookup{}

	scanner := newLineScanner(r)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 2 {
			continue
		}
		lookup[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lookup, nil
}

// Read a color lookup file mapping query/contig names to color strings
func ReadColorLookup(file string) ColorLookup {
	logger := log.New(os.Stderr, "", 0)

	reader, closer, err := openInput(file)
	if err != nil {
		logger.Fatal(err)
	}
	defer closer.Close()

	lookup, err := readLookupRecords(reader)
	if err != nil {
		logger.Fatalf("Failed to read the color lookup from %s: %v", file, err)
	}
	return lookup
}
