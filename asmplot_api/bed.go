package asmplot_api

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Regions below this size are dropped to avoid cluttering the plot with
// small annotations
const minRegionSize = 100000

// The fallback color for regions whose color field does not hold exactly
// three channels
var defaultRegionColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// ParseBedLine parses a single line from the BED region file. A nil region
// without an error means the region is smaller than 100 kb and was filtered
// out. The region type is the name field up to the first '_' or '(', the
// color comes from the comma-separated RGB channels in field 8.
func ParseBedLine(line string) (*Region, error) {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
	if len(fields) < 9 {
		return nil, fmt.Errorf("expected at least 9 tab-separated fields, got %d", len(fields))
	}

	start, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid region start %q", fields[1])
	}
	end, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid region end %q", fields[2])
	}
	if end-start < minRegionSize {
		return nil, nil
	}

	name := fields[3]
	regionType := name
	if cut := strings.IndexAny(name, "_("); cut != -1 {
		regionType = name[:cut]
	}

	var regionColor color.Color = defaultRegionColor
	channels := strings.Split(fields[8], ",")
	if len(channels) == 3 {
		var rgb [3]uint8
		for i, channel := range channels {
			value, err := strconv.ParseInt(channel, 10, 64)
			if err != nil || value < 0 || value > 255 {
				return nil, fmt.Errorf("invalid color channel %q", channel)
			}
			rgb[i] = uint8(value)
		}
		regionColor = color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	}

	return &Region{
		Chrom: fields[0],
		Start: start,
		End:   end,
		Type:  regionType,
		Color: regionColor,
	}, nil
}

// readBedRecords reads BED regions. The first line is a header and is
// always skipped; regions below the size threshold are dropped silently.
func readBedRecords(r io.Reader) ([]Region, error) {
	var regions []Region

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
		region, err := ParseBedLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNumber, err)
		}
		if region != nil {
			regions = append(regions, *region)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

// Read a BED file and return the regions that pass the size filter, in
// file order
func ReadBedFile(file string) []Region {
	logger := log.New(os.Stderr, "", 0)

	reader, closer, err := openInput(file)
	if err != nil {
		logger.Fatal(err)
	}
	defer closer.Close()

	regions, err := readBedRecords(reader)
	if err != nil {
		logger.Fatalf("Failed to read regions from %s: %v", file, err)
	}
	return regions
}
