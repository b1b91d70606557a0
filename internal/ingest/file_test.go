package ingest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/sersrcgen/internal/testutil/testlog"
)

func TestReadWidths(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		width int
		want  []byte
	}{
		{8, []byte{0x34, 0x02}},
		{16, []byte{0x34, 0x12, 0x02, 0x00}},
		{24, []byte{0x34, 0x12, 0x00, 0x02, 0x00, 0x00}},
		{32, []byte{0x34, 0x12, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}},
		{12, []byte{0x34, 0x02}},
	}
	for _, tc := range cases {
		buf, err := Read(strings.NewReader("0x1234 2\n"), "data.txt", tc.width, 0)
		if err != nil {
			t.Fatalf("width %d: %v", tc.width, err)
		}
		if !bytes.Equal(buf, tc.want) {
			t.Fatalf("width %d: got % X want % X", tc.width, buf, tc.want)
		}
	}
}

func TestReadCommentsAndSeparators(t *testing.T) {
	testlog.Start(t)
	src := `# header comment
0x01, 0x02;0x03
	4 5 # trailing comment 6

x06
`
	buf, err := Read(strings.NewReader(src), "data.txt", 8, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected buffer: % X", buf)
	}
}

func TestReadCap(t *testing.T) {
	testlog.Start(t)
	if _, err := Read(strings.NewReader("1 2 3"), "data.txt", 16, 4); !errors.Is(err, ErrTooMuchData) {
		t.Fatalf("expected ErrTooMuchData, got %v", err)
	}
}

func TestReadInvalidLiteralLocation(t *testing.T) {
	testlog.Start(t)
	_, err := Read(strings.NewReader("1\n2 bogus\n"), "data.txt", 8, 0)
	var litErr *LiteralError
	if !errors.As(err, &litErr) {
		t.Fatalf("expected LiteralError, got %v", err)
	}
	if litErr.Source != "data.txt:2" || litErr.Index != 2 {
		t.Fatalf("unexpected location: %+v", litErr)
	}
}

func TestReadFileMissing(t *testing.T) {
	testlog.Start(t)
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), 8, 0)
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("0xAA 0x55\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
	buf, err := ReadFile(path, 8, 0)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !bytes.Equal(buf, []byte{0xAA, 0x55}) {
		t.Fatalf("unexpected buffer: % X", buf)
	}
}

func TestNormalizeWidth(t *testing.T) {
	testlog.Start(t)
	for _, w := range []int{8, 16, 24, 32} {
		if got, ok := NormalizeWidth(w); !ok || got != w {
			t.Fatalf("width %d: got %d ok=%v", w, got, ok)
		}
	}
	for _, w := range []int{0, -8, 7, 64} {
		if got, ok := NormalizeWidth(w); ok || got != 8 {
			t.Fatalf("width %d: got %d ok=%v", w, got, ok)
		}
	}
}
