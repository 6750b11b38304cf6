package asmplot_api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChromTicks(t *testing.T) {
	genome := NewGenome(map[string]int64{"chr1": 3000000, "chr2": 2000000})
	ticks := chromTicks(genome)
	assert.Equal(t, 2, len(ticks))
	assert.Equal(t, "chr2", ticks[0].Label)
	assert.Equal(t, 1.0, ticks[0].Value)
	assert.Equal(t, "chr1", ticks[1].Label)
	assert.Equal(t, 2.0, ticks[1].Value)
}

func TestBpTicksGrouping(t *testing.T) {
	ticks := bpTicks{}.Ticks(0, 250000000)
	grouped := false
	for _, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		if len(tick.Label) > 3 {
			assert.Contains(t, tick.Label, ",")
			grouped = true
		}
	}
	assert.True(t, grouped)
}

func TestRenderPNG(t *testing.T) {
	genome := NewGenome(map[string]int64{"chr1": 3000000, "chr2": 2000000})
	sources := []AlignmentSource{{
		Alignments: []Alignment{{Chrom: "chr1", Start: 1000000, End: 2000000, Query: "q1"}},
		Colors:     ColorLookup{"q1": "red"},
	}}

	rects, err := Layout(genome, sources, nil)
	assert.Nil(t, err)

	output := filepath.Join(t.TempDir(), "plot.png")
	err = RenderPNG(genome, rects, output)
	assert.Nil(t, err)

	info, err := os.Stat(output)
	assert.Nil(t, err)
	assert.True(t, info.Size() > 0)
}
