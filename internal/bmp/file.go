package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/ironsheep/bmp-rotate/internal/imaging"
)

// ReadFile opens path and decodes it.
func ReadFile(path string) (*imaging.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// WriteFile encodes img into a new file at path, replacing any existing file.
// If encoding, flushing or closing fails, the partial file is removed.
func WriteFile(path string, img *imaging.Image) (err error) {
	if img.IsEmpty() {
		return ErrNilSource
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				err = errors.Join(err, fmt.Errorf("failed to remove partial output: %w", rerr))
			}
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: flushing %s: %w", ErrRowWrite, path, err)
	}
	return nil
}
