package asmplot_api

import (
	"fmt"
	"image/color"
)

// Vertical layout constants in slot units. Each chromosome owns one slot;
// the reference bar is centered on it and each alignment source stacks one
// spacing step above the previous one.
const (
	refHeight  = 0.10
	asmHeight  = 0.05
	asmSpacing = 0.15
)

// The reference track is drawn as black at 60% opacity so region overlays
// stay visible on top of it
var refTrackColor = color.NRGBA{R: 0, G: 0, B: 0, A: 153}

// Layout places every drawable element on the shared chromosome axis and
// returns the rectangles in draw order: the reference track for every
// catalog chromosome, then the regions in input order, then each alignment
// source in input order with its own vertical offset. Records on
// chromosomes outside the catalog are dropped silently. A query without an
// entry in its source's color lookup is an error.
func Layout(genome *Genome, sources []AlignmentSource, regions []Region) ([]PlacedRectangle, error) {
	var rects []PlacedRectangle

	for _, chrom := range genome.Names() {
		slot, _ := genome.Slot(chrom)
		length, _ := genome.Length(chrom)
		rects = append(rects, PlacedRectangle{
			Track:  Track{Kind: "reference"},
			X:      0,
			Width:  length,
			Y:      float64(slot) - refHeight/2,
			Height: refHeight,
			Color:  refTrackColor,
		})
	}

	for _, region := range regions {
		slot, ok := genome.Slot(region.Chrom)
		if !ok {
			continue
		}
		rects = append(rects, PlacedRectangle{
			Track:  Track{Kind: "region"},
			X:      region.Start,
			Width:  region.End - region.Start,
			Y:      float64(slot) - refHeight/2,
			Height: refHeight,
			Color:  region.Color,
		})
	}

	for i, source := range sources {
		offset := asmSpacing * float64(i+1)
		for _, alignment := range source.Alignments {
			slot, ok := genome.Slot(alignment.Chrom)
			if !ok {
				continue
			}
			spec, ok := source.Colors[alignment.Query]
			if !ok {
				return nil, fmt.Errorf("no color defined for query %q", alignment.Query)
			}
			alignmentColor, err := ParseColor(spec)
			if err != nil {
				return nil, fmt.Errorf("query %q: %v", alignment.Query, err)
			}
			rects = append(rects, PlacedRectangle{
				Track:  Track{Kind: "alignment", Source: i},
				X:      alignment.Start,
				Width:  alignment.End - alignment.Start,
				Y:      float64(slot) + offset,
				Height: asmHeight,
				Color:  alignmentColor,
			})
		}
	}

	return rects, nil
}
