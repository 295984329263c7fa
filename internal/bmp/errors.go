package bmp

import "errors"

// Decode errors.
var (
	ErrInvalidSignature    = errors.New("bmp: invalid signature")
	ErrUnsupportedBitDepth = errors.New("bmp: unsupported bit depth")
	ErrInvalidHeader       = errors.New("bmp: invalid header")
	ErrIO                  = errors.New("bmp: i/o error")
	ErrMemory              = errors.New("bmp: cannot allocate image")
)

// Encode errors.
var (
	ErrNilSource      = errors.New("bmp: nil or empty source image")
	ErrNilDestination = errors.New("bmp: nil destination")
	ErrImageTooLarge  = errors.New("bmp: image too large for header fields")
	ErrHeaderWrite    = errors.New("bmp: writing header")
	ErrRowWrite       = errors.New("bmp: writing pixel row")
)
