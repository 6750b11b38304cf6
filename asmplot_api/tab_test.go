package asmplot_api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTabLine(t *testing.T) {
	line := "q1\t0\t100\tchr1\t1000\t2000\t248387328\tP\t0.01"
	alignment, err := ParseTabLine(line)
	assert.Nil(t, err)
	assert.Equal(t, Alignment{Chrom: "chr1", Start: 1000, End: 2000, Query: "q1"}, alignment)
}

func TestParseTabLineMalformed(t *testing.T) {
	_, err := ParseTabLine("q1\t0\t100\tchr1")
	assert.NotNil(t, err)

	_, err = ParseTabLine("q1\t0\t100\tchr1\tabc\t2000")
	assert.NotNil(t, err)

	_, err = ParseTabLine("q1\t0\t100\tchr1\t1000\txyz")
	assert.NotNil(t, err)
}

func TestReadTabRecords(t *testing.T) {
	input := strings.Join([]string{
		"query_name\tquery_start\tquery_end\ttarget_name\tref_pos_start\tref_pos_end\tref_seq_len",
		"q1\t0\t100\tchr1\t1000\t2000\t248387328",
		"",
		"# a comment",
		"q2\t0\t50\tchr2\t500\t900\t242696752",
	}, "\n")

	alignments, err := readTabRecords(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(alignments))
	assert.Equal(t, Alignment{Chrom: "chr1", Start: 1000, End: 2000, Query: "q1"}, alignments[0])
	assert.Equal(t, Alignment{Chrom: "chr2", Start: 500, End: 900, Query: "q2"}, alignments[1])
}

func TestReadTabRecordsMalformedAborts(t *testing.T) {
	input := "header\nq1\t0\t100\tchr1\t1000\t2000\nq2\t0\t100\n"
	_, err := readTabRecords(strings.NewReader(input))
	assert.NotNil(t, err)
}
