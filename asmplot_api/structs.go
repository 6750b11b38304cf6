package asmplot_api

import "image/color"

// A struct representing one alignment from the tabular alignment format
type Alignment struct {
	// The name of the reference chromosome the contig aligns to
	Chrom string

	// The 0-based start of the alignment on the reference
	Start int64

	// The end of the alignment on the reference
	End int64

	// The name of the aligned query/contig
	Query string
}

// A struct representing one alignment parsed from a PAF file
// All positional fields are carried as the text found on the line
type PafAlignment struct {
	// The name of the query sequence
	QueryName string

	// The 0-based start of the alignment on the query
	QueryStart string

	// The end of the alignment on the query
	QueryEnd string

	// The name of the target (reference) sequence
	TargetName string

	// The 0-based start of the alignment on the target
	RefStart string

	// The end of the alignment on the target
	RefEnd string

	// The total length of the target sequence
	RefSeqLen string

	// The value of the tp tag (type of alignment)
	// "P" = primary, "I" = inversion-split primary
	Tp string

	// The value of the de tag (sequence divergence)
	De string
}

// A struct representing one annotated region from a BED file
type Region struct {
	// The name of the chromosome the region lies on
	Chrom string

	// The 0-based start of the region
	Start int64

	// The end of the region
	End int64

	// The region type, taken from the name field up to the first '_' or '('
	Type string

	// The display color of the region
	Color color.Color
}

// A mapping from a query/contig name to a color specification string
type ColorLookup map[string]string

// A struct pairing the alignments of one input file with its color lookup
type AlignmentSource struct {
	// The alignments read from the input file, in file order
	Alignments []Alignment

	// The color lookup for the queries of this file
	Colors ColorLookup
}

// A struct identifying the layer a placed rectangle belongs to
type Track struct {
	// The kind of track: "reference", "region" or "alignment"
	Kind string

	// The 0-based index of the alignment source
	// Only meaningful for alignment tracks
	Source int
}

// A struct representing one rectangle to draw on the plot
// Rectangles are built fresh for every plot and never persisted
type PlacedRectangle struct {
	// The track this rectangle belongs to
	Track Track

	// The position of the left edge in base pairs
	X int64

	// The width in base pairs
	Width int64

	// The position of the bottom edge in slot units
	Y float64

	// The height in slot units
	Height float64

	// The fill color
	Color color.Color
}
