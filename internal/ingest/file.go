package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Supported data file widths in bits.
var validWidths = [...]int{8, 16, 24, 32}

// NormalizeWidth maps width onto a supported value. Unsupported widths fall
// back to 8 and report false.
func NormalizeWidth(width int) (int, bool) {
	for _, w := range validWidths {
		if width == w {
			return w, true
		}
	}
	return 8, false
}

// ReadFile loads a data file. See Read for the format.
func ReadFile(path string, width int, maxLimbs int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer func() { _ = f.Close() }()

	buf, err := Read(f, path, width, maxLimbs)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("bytes", len(buf)).Msg("ingest: data file loaded")
	return buf, nil
}

// Read parses literals separated by whitespace or commas; '#' starts a
// comment running to end of line. Every value contributes exactly width/8
// little-endian limbs, so bits above width are dropped.
func Read(r io.Reader, name string, width int, maxLimbs int) ([]byte, error) {
	if maxLimbs <= 0 {
		maxLimbs = DefaultMaxLimbs
	}
	w, ok := NormalizeWidth(width)
	if !ok {
		log.Warn().Int("width", width).Msg("ingest: unsupported data width, using 8")
	}
	limbs := w / 8

	values := make([]uint32, 0, min(maxLimbs/limbs, 256))
	scanner := bufio.NewScanner(r)
	lineNum := 0
	index := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if cut := strings.IndexByte(line, '#'); cut >= 0 {
			line = line[:cut]
		}
		for _, tok := range strings.FieldsFunc(line, isSeparator) {
			v, err := ParseValue(tok)
			if err != nil {
				return nil, &LiteralError{
					Source:  fmt.Sprintf("%s:%d", name, lineNum),
					Index:   index,
					Literal: tok,
					Reason:  err.Error(),
				}
			}
			if (len(values)+1)*limbs > maxLimbs {
				return nil, fmt.Errorf("%w: more than %d bytes at %s:%d", ErrTooMuchData, maxLimbs, name, lineNum)
			}
			values = append(values, v)
			index++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrFileAccess, name, err)
	}

	buf := make([]byte, 0, len(values)*limbs)
	for _, v := range values {
		buf = AppendLimbs(buf, v, limbs)
	}
	return buf, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', ',', ';':
		return true
	default:
		return false
	}
}
