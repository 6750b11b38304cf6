package asmplot_api

import (
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	cli "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

// The CHM13v2.0 chromosome set with sequence lengths in base pairs
var defaultChromosomes = map[string]int64{
	"chr1": 248387328, "chr2": 242696752, "chr3": 201105948, "chr4": 193574945,
	"chr5": 182045439, "chr6": 172126628, "chr7": 160567428, "chr8": 146259331,
	"chr9": 150617247, "chr10": 134758134, "chr11": 135127769, "chr12": 133324548,
	"chr13": 113566686, "chr14": 101161492, "chr15": 99753195, "chr16": 96330374,
	"chr17": 84276897, "chr18": 80542538, "chr19": 61707364, "chr20": 66210255,
	"chr21": 45090682, "chr22": 51324926, "chrX": 154259566, "chrY": 62460029,
	"chrM": 16569,
}

// A struct holding the fixed reference chromosome catalog with its
// display order and vertical slot per chromosome
type Genome struct {
	lengths map[string]int64
	names   []string // reverse natural order, top of the plot last
	slots   map[string]int
}

// NewGenome builds a genome catalog from a name to length mapping.
// Chromosomes are ordered by reverse natural sort and assigned vertical
// slots starting at 1.
func NewGenome(lengths map[string]int64) *Genome {
	names := make([]string, 0, len(lengths))
	for name := range lengths {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[j], names[i])
	})

	slots := make(map[string]int, len(names))
	for i, name := range names {
		slots[name] = i + 1
	}

	return &Genome{
		lengths: lengths,
		names:   names,
		slots:   slots,
	}
}

// DefaultGenome returns the built-in CHM13 catalog
func DefaultGenome() *Genome {
	return NewGenome(defaultChromosomes)
}

// Read a genome catalog from a YAML file mapping chromosome names to lengths
func ReadGenome(Cctx *cli.Context) *Genome {
	logger := log.New(os.Stderr, "", 0)

	genomeFile, err := os.ReadFile(Cctx.String("genome"))
	if err != nil {
		logger.Fatalf("Failed to open the genome file: %v", err)
	}

	var lengths map[string]int64
	if err := yaml.Unmarshal(genomeFile, &lengths); err != nil {
		logger.Fatalf("Failed to parse the genome file: %v", err)
	}
	if len(lengths) == 0 {
		logger.Fatal("The genome file does not define any chromosomes")
	}

	return NewGenome(lengths)
}

// Names returns the chromosome names in reverse natural order, which is
// also slot order (the name at index i has slot i+1)
func (genome *Genome) Names() []string {
	return genome.names
}

// Count returns the number of chromosomes in the catalog
func (genome *Genome) Count() int {
	return len(genome.names)
}

// Length returns the length of a chromosome in base pairs
func (genome *Genome) Length(chrom string) (int64, bool) {
	length, ok := genome.lengths[chrom]
	return length, ok
}

// Slot returns the fixed vertical slot of a chromosome
func (genome *Genome) Slot(chrom string) (int, bool) {
	slot, ok := genome.slots[chrom]
	return slot, ok
}

// MaxLength returns the length of the longest chromosome in the catalog
func (genome *Genome) MaxLength() int64 {
	var max int64
	for _, length := range genome.lengths {
		if length > max {
			max = length
		}
	}
	return max
}

// naturalLess compares two chromosome names in natural order: runs of
// digits compare as integers, everything else compares case-insensitively
func naturalLess(a, b string) bool {
	return naturalCompare(a, b) < 0
}

func naturalCompare(a, b string) int {
	chunksA := naturalChunks(a)
	chunksB := naturalChunks(b)
	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		chunkA := chunksA[i]
		chunkB := chunksB[i]
		numA, errA := strconv.ParseInt(chunkA, 10, 64)
		numB, errB := strconv.ParseInt(chunkB, 10, 64)
		if errA == nil && errB == nil {
			if numA != numB {
				if numA < numB {
					return -1
				}
				return 1
			}
			continue
		}
		if cmp := compareFold(chunkA, chunkB); cmp != 0 {
			return cmp
		}
	}
	return len(chunksA) - len(chunksB)
}

// naturalChunks splits a name into alternating runs of digits and non-digits
func naturalChunks(s string) []string {
	var chunks []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[i-1]) {
			chunks = append(chunks, s[start:i])
			start = i
		}
	}
	return chunks
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
