package asmplot_api

import (
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Canvas dimensions matching the original 10x6 inch figure at 600 DPI
const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
	plotDPI    = 600
)

// rectangles draws placed rectangles in data coordinates, in slice order
// so later entries paint over earlier ones
type rectangles struct {
	rects []PlacedRectangle
}

func (r *rectangles) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, rect := range r.rects {
		xMin := trX(float64(rect.X))
		xMax := trX(float64(rect.X + rect.Width))
		yMin := trY(rect.Y)
		yMax := trY(rect.Y + rect.Height)
		poly := c.ClipPolygonXY([]vg.Point{
			{X: xMin, Y: yMin},
			{X: xMax, Y: yMin},
			{X: xMax, Y: yMax},
			{X: xMin, Y: yMax},
		})
		c.FillPolygon(rect.Color, poly)
	}
}

// bpTicks formats position ticks with digit grouping, so coordinates in the
// hundreds of megabases stay readable
type bpTicks struct{}

func (bpTicks) Ticks(min, max float64) []plot.Tick {
	printer := message.NewPrinter(language.English)
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		ticks[i].Label = printer.Sprintf("%d", int64(tick.Value))
	}
	return ticks
}

// chromTicks labels each vertical slot with its chromosome name
func chromTicks(genome *Genome) plot.ConstantTicks {
	names := genome.Names()
	ticks := make([]plot.Tick, len(names))
	for i, name := range names {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: name}
	}
	return plot.ConstantTicks(ticks)
}

// RenderPNG draws the placed rectangles on a fixed chromosome axis and
// writes the plot as a PNG file. The horizontal axis spans the longest
// catalog chromosome, the vertical axis one slot per chromosome.
func RenderPNG(genome *Genome, rects []PlacedRectangle, output string) error {
	p := plot.New()
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Chromosome"
	p.Add(&rectangles{rects: rects})

	p.X.Min = 0
	p.X.Max = float64(genome.MaxLength())
	p.Y.Min = 0
	p.Y.Max = float64(genome.Count() + 1)
	p.X.Tick.Marker = bpTicks{}
	p.Y.Tick.Marker = chromTicks(genome)

	canvas := vgimg.NewWith(vgimg.UseWH(plotWidth, plotHeight), vgimg.UseDPI(plotDPI))
	p.Draw(draw.New(canvas))

	outputFile, err := os.Create(output)
	if err != nil {
		return err
	}
	defer outputFile.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(outputFile); err != nil {
		return err
	}
	return outputFile.Close()
}
