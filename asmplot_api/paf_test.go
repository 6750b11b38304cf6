package asmplot_api

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const pafLine = "q1\t5000000\t0\t100\t+\tchr1\t248387328\t1000\t2000\t150000\t150000\t60\ttp:A:P\tde:f:0.01"

func TestParsePafLine(t *testing.T) {
	alignment, err := ParsePafLine(pafLine, 100000)
	assert.Nil(t, err)
	assert.NotNil(t, alignment)
	assert.Equal(t, "q1", alignment.QueryName)
	assert.Equal(t, "0", alignment.QueryStart)
	assert.Equal(t, "100", alignment.QueryEnd)
	assert.Equal(t, "chr1", alignment.TargetName)
	assert.Equal(t, "248387328", alignment.RefSeqLen)
	assert.Equal(t, "1000", alignment.RefStart)
	assert.Equal(t, "2000", alignment.RefEnd)
	assert.Equal(t, "P", alignment.Tp)
	assert.Equal(t, "0.01", alignment.De)
}

func TestParsePafLineInversion(t *testing.T) {
	line := strings.Replace(pafLine, "tp:A:P", "tp:A:I", 1)
	alignment, err := ParsePafLine(line, 100000)
	assert.Nil(t, err)
	assert.NotNil(t, alignment)
	assert.Equal(t, "I", alignment.Tp)
}

func TestParsePafLineFilters(t *testing.T) {
	filtered := []string{
		"q1\t100\t0\t100", // fewer than 12 fields
		strings.Replace(pafLine, "\t150000\t", "\t99999\t", 1), // below min length
		strings.Replace(pafLine, "tp:A:P", "tp:A:S", 1),        // secondary alignment
		strings.Replace(pafLine, "\tde:f:0.01", "", 1),         // de tag missing
		strings.Replace(pafLine, "\ttp:A:P", "", 1),            // tp tag missing
	}
	for _, line := range filtered {
		alignment, err := ParsePafLine(line, 100000)
		assert.Nil(t, err)
		assert.Nil(t, alignment)
	}
}

func TestParsePafLineMalformed(t *testing.T) {
	_, err := ParsePafLine(strings.Replace(pafLine, "tp:A:P", "tp:P", 1), 100000)
	assert.NotNil(t, err)

	_, err = ParsePafLine(strings.Replace(pafLine, "de:f:0.01", "de:f:0.01:extra", 1), 100000)
	assert.NotNil(t, err)

	_, err = ParsePafLine(strings.Replace(pafLine, "\t150000\t150000\t", "\tabc\t150000\t", 1), 100000)
	assert.NotNil(t, err)
}

func TestReadPafRecordsSkipsFilteredLines(t *testing.T) {
	rejected := strings.Replace(pafLine, "tp:A:P", "tp:A:S", 1)
	input := rejected + "\n" + pafLine + "\n" + rejected + "\n" + pafLine + "\n"

	alignments, err := readPafRecords(strings.NewReader(input), 100000)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(alignments))
	assert.Equal(t, "q1", alignments[0].QueryName)
}

func TestPafAlignmentConversion(t *testing.T) {
	pafAlignment, err := ParsePafLine(pafLine, 100000)
	assert.Nil(t, err)

	alignment, err := pafAlignment.Alignment()
	assert.Nil(t, err)
	assert.Equal(t, Alignment{Chrom: "chr1", Start: 1000, End: 2000, Query: "q1"}, alignment)
}

func TestWriteTabRecordsRoundTrip(t *testing.T) {
	pafAlignment, err := ParsePafLine(pafLine, 100000)
	assert.Nil(t, err)

	var buffer bytes.Buffer
	err = writeTabRecords([]*PafAlignment{pafAlignment}, &buffer)
	assert.Nil(t, err)

	// The written file starts with a header and parses back through the
	// tabular alignment reader
	alignments, err := readTabRecords(&buffer)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(alignments))
	assert.Equal(t, Alignment{Chrom: "chr1", Start: 1000, End: 2000, Query: "q1"}, alignments[0])
}

func TestWriteTabRecordsEmpty(t *testing.T) {
	var buffer bytes.Buffer
	err := writeTabRecords(nil, &buffer)
	assert.Nil(t, err)
	assert.Equal(t, 0, buffer.Len())
}

func TestIsPafFile(t *testing.T) {
	assert.True(t, isPafFile("alignments.paf"))
	assert.True(t, isPafFile("alignments.paf.gz"))
	assert.False(t, isPafFile("alignments.txt"))
	assert.False(t, isPafFile("alignments.txt.gz"))
}
