package asmplot_api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLookupRecords(t *testing.T) {
	input := "contig_1\tred\ncontig_2\tblue\textra_column\n"
	lookup, err := readLookupRecords(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, ColorLookup{"contig_1": "red", "contig_2": "blue"}, lookup)
}

func TestReadLookupRecordsLastRowWins(t *testing.T) {
	input := "contig_1\tred\ncontig_1\tblue\n"
	lookup, err := readLookupRecords(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, "blue", lookup["contig_1"])
}

func TestReadLookupRecordsSkipsShortRows(t *testing.T) {
	input := "contig_1\tred\nno_value\n\ncontig_2\tgreen\n"
	lookup, err := readLookupRecords(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(lookup))
}
