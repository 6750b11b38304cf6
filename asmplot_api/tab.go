package asmplot_api

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// ParseTabLine parses a single line from the tabular alignment format.
// The relevant fields are the query name (field 0), the target chromosome
// (field 3) and the reference start/end (fields 4 and 5).
func ParseTabLine(line string) (Alignment, error) {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
	if len(fields) < 6 {
		return Alignment{}, fmt.Errorf("expected at least 6 tab-separated fields, got %d", len(fields))
	}

	start, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return Alignment{}, fmt.Errorf("invalid alignment start %q", fields[4])
	}
	end, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return Alignment{}, fmt.Errorf("invalid alignment end %q", fields[5])
	}

	return Alignment{
		Chrom: fields[3],
		Start: start,
		End:   end,
		Query: fields[0],
	}, nil
}

// readTabRecords reads the tabular alignment format. The first line is a
// header and is always skipped; a malformed record aborts the read.
func readTabRecords(r io.Reader) ([]Alignment, error) {
	var alignments []Alignment

	scanner := newLineScanner(r)
	header := true
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if header {
			header = false
			continue
		}
		line := scanner.Text()
		if skippable(line) {
			continue
		}
		alignment, err := ParseTabLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNumber, err)
		}
		alignments = append(alignments, alignment)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return alignments, nil
}

// Read a tabular alignment file and return its alignments in file order
func ReadTabFile(file string) []Alignment {
	logger := log.New(os.Stderr, "", 0)

	reader, closer, err := openInput(file)
	if err != nil {
		logger.Fatal(err)
	}
	defer closer.Close()

	alignments, err := readTabRecords(reader)
	if err != nil {
		logger.Fatalf("Failed to read alignments from %s: %v", file, err)
	}
	return alignments
}
