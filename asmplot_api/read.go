package asmplot_api

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
)

// openInput opens a file for line-wise reading, transparently wrapping
// bgzipped inputs in a bgzf reader. The returned closer closes both the
// reader and the underlying file.
func openInput(file string) (io.Reader, io.Closer, error) {
	openFile, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	if !strings.HasSuffix(file, ".gz") {
		return openFile, openFile, nil
	}

	bgReader, err := bgzf.NewReader(openFile, 1)
	if err != nil {
		openFile.Close()
		return nil, nil, err
	}
	return bgReader, &bgzfInput{reader: bgReader, file: openFile}, nil
}

type bgzfInput struct {
	reader *bgzf.Reader
	file   *os.File
}

func (input *bgzfInput) Close() error {
	err := input.reader.Close()
	if fileErr := input.file.Close(); err == nil {
		err = fileErr
	}
	return err
}

// newLineScanner returns a scanner over the input with enough buffer for
// long alignment lines
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	const maxCapacity = 8 * 1000000 // 8 MB
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)
	return scanner
}

// skippable reports whether a line carries no record: blank lines and
// comment lines starting with '#'
func skippable(line string) bool {
	return strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#")
}
