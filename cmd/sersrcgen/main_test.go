package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/danmuck/sersrcgen/internal/config"
	"github.com/danmuck/sersrcgen/internal/protocol"
	"github.com/danmuck/sersrcgen/internal/protocol/uart"
	"github.com/danmuck/sersrcgen/internal/testutil/testlog"
	"github.com/danmuck/sersrcgen/internal/timing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateWritesArtifacts(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	out, err := execute(t, "generate",
		"-p", "uart", "-f", "8N1", "-d", "0x01,0x02", "0x80",
		"-b", "500000", "-T", "-o", dir)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "Serialized 3 frames into 30 bits (8N1") {
		t.Fatalf("unexpected output: %q", out)
	}

	mem, err := os.ReadFile(filepath.Join(dir, "serialized_data.mem"))
	if err != nil {
		t.Fatalf("read mem: %v", err)
	}
	if got := strings.Count(string(mem), "\n"); got != 30 {
		t.Fatalf("unexpected mem line count: %d", got)
	}
	tb, err := os.ReadFile(filepath.Join(dir, "testbench_boilerplate.v"))
	if err != nil {
		t.Fatalf("read testbench: %v", err)
	}
	if !strings.Contains(string(tb), "SERIALIZED_LEN = 30;") {
		t.Fatalf("unexpected testbench:\n%s", tb)
	}
}

func TestGenerateErrorsLeaveNoFiles(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		args []string
		want error
	}{
		{[]string{"-p", "spi", "-d", "1"}, protocol.ErrUnsupportedProtocol},
		{[]string{"-p", "z", "-d", "1"}, protocol.ErrInvalidProtocol},
		{[]string{"-f", "4N1", "-d", "1"}, uart.ErrInvalidDataWidth},
		{[]string{"-b", "0", "-d", "1"}, timing.ErrInvalidBaudRate},
		{[]string{"-d", "1", "-D", "data.txt"}, config.ErrDataSourceConflict},
	}
	for _, tc := range cases {
		dir := t.TempDir()
		args := append([]string{"generate", "-T", "-o", dir}, tc.args...)
		if _, err := execute(t, args...); !errors.Is(err, tc.want) {
			t.Fatalf("%v: expected %v, got %v", tc.args, tc.want, err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Fatalf("%v: expected no artifacts, found %d", tc.args, len(entries))
		}
	}
}

func TestBuildJobFlagsOverrideConfig(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "job.toml")
	if err := os.WriteFile(path, []byte(`
format = "7E2"
baud = 115200
data = ["0x10"]
testbench = true
`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := &generateOptions{}
	cmd := bindGenerateCmd(&rootOptions{}, opts)
	if err := cmd.ParseFlags([]string{"--config", path, "-b", "9600", "--msb-first", "--pause", "3"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	job, err := buildJob(opts, cmd.Flags(), nil)
	if err != nil {
		t.Fatalf("build job: %v", err)
	}
	if job.Format != "7E2" {
		t.Fatalf("config format lost: %q", job.Format)
	}
	if job.Baud != 9600 {
		t.Fatalf("flag baud not applied: %d", job.Baud)
	}
	if job.BitOrder != "msb" || job.Pause != 3 {
		t.Fatalf("unexpected order/pause: %q %d", job.BitOrder, job.Pause)
	}
	if !job.GenerateTestbench {
		t.Fatalf("config testbench lost")
	}
	if !reflect.DeepEqual(job.InlineData, []string{"0x10"}) {
		t.Fatalf("config data lost: %v", job.InlineData)
	}
}

func TestEncodeDecodeCommands(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "encode", "7E2")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(out, "rule 0x67: 7 data bits, parity even, 2 stop bits, lsb first") {
		t.Fatalf("unexpected encode output: %q", out)
	}

	out, err = execute(t, "decode", "0x88")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(out, "8N1/msb\n") {
		t.Fatalf("unexpected decode output: %q", out)
	}

	if _, err := execute(t, "decode", "0x38"); !errors.Is(err, uart.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
	if _, err := execute(t, "decode", "banana"); !errors.Is(err, uart.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
}

func TestTimingCommand(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "timing", "4000000")
	if err != nil {
		t.Fatalf("timing: %v", err)
	}
	if !strings.Contains(out, "250 ns per bit, 125 ns half period") {
		t.Fatalf("unexpected timing output: %q", out)
	}
	if _, err := execute(t, "timing", "0"); !errors.Is(err, timing.ErrInvalidBaudRate) {
		t.Fatalf("expected ErrInvalidBaudRate, got %v", err)
	}
}

func TestGermanMessages(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "--lang", "de", "timing", "4000000")
	if err != nil {
		t.Fatalf("timing: %v", err)
	}
	if !strings.Contains(out, "250 ns pro Bit") {
		t.Fatalf("unexpected german output: %q", out)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "job.toml")
	if _, err := execute(t, "config", "init", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := execute(t, "config", "init", path); err == nil {
		t.Fatalf("expected existing config error")
	}
	out, err := execute(t, "config", "validate", path)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "(uart 8N1, inline data)") {
		t.Fatalf("unexpected validate output: %q", out)
	}
}
