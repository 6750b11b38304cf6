package asmplot_api

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// The column order of the tabular alignment format written by the paf
// command and read back by the plot command
var tabHeader = []string{
	"query_name", "query_start", "query_end", "target_name",
	"ref_pos_start", "ref_pos_end", "ref_seq_len", "tp", "de",
}

// ParsePafLine parses a single PAF line. A nil alignment without an error
// means the line was filtered out: fewer than 12 fields, an alignment block
// below minLength, a tp tag other than P or I, or a missing de tag. A
// malformed line (non-numeric block length, optional field without exactly
// two colons) returns an error instead.
func ParsePafLine(line string, minLength int64) (*PafAlignment, error) {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
	if len(fields) < 12 {
		return nil, nil
	}

	matches, err := strconv.ParseInt(fields[9], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number of matches %q", fields[9])
	}
	if matches < minLength {
		return nil, nil
	}

	// See the PAF spec @ https://github.com/lh3/miniasm/blob/master/PAF.md
	alignment := &PafAlignment{
		QueryName:  fields[0],
		QueryStart: fields[2],
		QueryEnd:   fields[3],
		TargetName: fields[5],
		RefSeqLen:  fields[6],
		RefStart:   fields[7],
		RefEnd:     fields[8],
	}

	for _, field := range fields[12:] {
		parts := strings.Split(field, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed optional field %q", field)
		}
		switch parts[0] {
		case "tp":
			alignment.Tp = parts[2]
		case "de":
			alignment.De = parts[2]
		}
	}

	// Keep primary and inversion-split primary alignments only
	if alignment.Tp != "P" && alignment.Tp != "I" {
		return nil, nil
	}
	if alignment.De == "" {
		return nil, nil
	}

	return alignment, nil
}

// Alignment converts a PAF alignment to the normalized form used by the
// layout, keyed by the target chromosome
func (alignment *PafAlignment) Alignment() (Alignment, error) {
	start, err := strconv.ParseInt(alignment.RefStart, 10, 64)
	if err != nil {
		return Alignment{}, fmt.Errorf("invalid reference start %q", alignment.RefStart)
	}
	end, err := strconv.ParseInt(alignment.RefEnd, 10, 64)
	if err != nil {
		return Alignment{}, fmt.Errorf("invalid reference end %q", alignment.RefEnd)
	}

	return Alignment{
		Chrom: alignment.TargetName,
		Start: start,
		End:   end,
		Query: alignment.QueryName,
	}, nil
}

// readPafRecords reads a PAF stream. Filtered lines are dropped silently
// and do not affect the remaining lines; a malformed line aborts the read.
func readPafRecords(r io.Reader, minLength int64) ([]*PafAlignment, error) {
	var alignments []*PafAlignment

	scanner := newLineScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		alignment, err := ParsePafLine(scanner.Text(), minLength)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNumber, err)
		}
		if alignment != nil {
			alignments = append(alignments, alignment)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return alignments, nil
}

// Read a PAF file and return the alignments that pass the length and tag
// filters, in file order
func ReadPaf(file string, minLength int64) []*PafAlignment {
	logger := log.New(os.Stderr, "", 0)

	reader, closer, err := openInput(file)
	if err != nil {
		logger.Fatal(err)
	}
	defer closer.Close()

	alignments, err := readPafRecords(reader, minLength)
	if err != nil {
		logger.Fatalf("Failed to read PAF alignments from %s: %v", file, err)
	}
	return alignments
}

// writeTabRecords writes PAF alignments in the tabular alignment format,
// starting with a header line
func writeTabRecords(alignments []*PafAlignment, w io.Writer) error {
	if len(alignments) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, strings.Join(tabHeader, "\t")); err != nil {
		return err
	}
	for _, alignment := range alignments {
		fields := []string{
			alignment.QueryName, alignment.QueryStart, alignment.QueryEnd,
			alignment.TargetName, alignment.RefStart, alignment.RefEnd,
			alignment.RefSeqLen, alignment.Tp, alignment.De,
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// isPafFile reports whether an input file should go through the PAF parser
func isPafFile(file string) bool {
	return strings.HasSuffix(file, ".paf") || strings.HasSuffix(file, ".paf.gz")
}
