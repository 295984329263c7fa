package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/bmp-rotate/internal/bmp"
	"github.com/ironsheep/bmp-rotate/internal/imaging"
	"github.com/ironsheep/bmp-rotate/internal/logging"
)

func TestRun_InfoFlags(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--version"}, "bmp-rotate dev"},
		{[]string{"-v"}, "Git commit:"},
		{[]string{"--help"}, "Usage: bmp-rotate"},
		{[]string{"help"}, "--turns N"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(logging.Nop(), tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit code: got %d, want 0", code)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout %q does not contain %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRun_BadArguments(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{"no arguments", nil, true},
		{"one argument", []string{"in.bmp"}, true},
		{"three arguments", []string{"a.bmp", "b.bmp", "c.bmp"}, true},
		{"bad turns", []string{"--turns", "half", "a.bmp", "b.bmp"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(logging.Nop(), tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("exit code: got %d, want 1", code)
			}
			if got := strings.Contains(stderr.String(), "Usage:"); got != tt.wantUsage {
				t.Errorf("usage on stderr: got %v, want %v", got, tt.wantUsage)
			}
		})
	}
}

func TestRun_Rotate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.bmp")
	dst := filepath.Join(dir, "out.bmp")

	img := imaging.New(3, 1)
	for x := uint64(0); x < 3; x++ {
		p, _ := img.PixelAt(x, 0)
		p.R = uint8(x * 100)
	}
	if err := bmp.WriteFile(src, img); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(logging.Nop(), []string{src, dst}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code: got %d, want 0 (stderr %q)", code, stderr.String())
	}
	out, err := bmp.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if out.Width() != 1 || out.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 1x3", out.Width(), out.Height())
	}

	if code := run(logging.Nop(), []string{"--turns", "2", src, dst}, &stdout, &stderr); code != 0 {
		t.Fatalf("--turns 2 exit code: got %d, want 0", code)
	}
	out, err = bmp.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !imaging.Equal(out, imaging.Rotate(img, 2)) {
		t.Error("--turns 2 output does not match a half turn")
	}
}

func TestRun_MissingSource(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run(logging.Nop(), []string{filepath.Join(dir, "missing.bmp"), filepath.Join(dir, "out.bmp")}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
}
