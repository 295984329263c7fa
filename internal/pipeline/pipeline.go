// Package pipeline sequences a BMP rotation: read the source file, rotate the
// decoded image, write the result.
package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/bmp-rotate/internal/bmp"
	"github.com/ironsheep/bmp-rotate/internal/imaging"
)

// ErrRotate is returned when the rotated image cannot be produced.
var ErrRotate = errors.New("failed to rotate image")

// Result summarises a completed rotation.
type Result struct {
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	QuarterTurns int    `json:"quarter_turns"`
	Width        uint64 `json:"width"`
	Height       uint64 `json:"height"`
}

// RotateFile reads the BMP at src, rotates it counter-clockwise by
// quarterTurns and writes it to dst. The source image is released as soon as
// the rotation has finished, whether or not it succeeded. A partially written
// dst is removed on failure.
func RotateFile(log *zap.SugaredLogger, src, dst string, quarterTurns int) (*Result, error) {
	log.Debugf("reading %s", src)
	img, err := bmp.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	log.Debugf("decoded %dx%d image", img.Width(), img.Height())

	rotated := imaging.Rotate(img, quarterTurns)
	img.Release()
	if rotated.IsEmpty() {
		return nil, ErrRotate
	}
	defer rotated.Release()

	log.Debugf("writing %dx%d image to %s", rotated.Width(), rotated.Height(), dst)
	if err := bmp.WriteFile(dst, rotated); err != nil {
		return nil, fmt.Errorf("write %s: %w", dst, err)
	}

	return &Result{
		Source:       src,
		Destination:  dst,
		QuarterTurns: quarterTurns,
		Width:        rotated.Width(),
		Height:       rotated.Height(),
	}, nil
}

// ExitCode maps a pipeline outcome to a process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
