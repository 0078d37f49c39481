package qrcode

import (
	"errors"
	"fmt"

	goqr "github.com/skip2/go-qrcode"
)

var ErrEmptyContent = errors.New("qrcode: empty content")

// Encoder genera PNGs cuadrados de Size píxeles.
type Encoder struct {
	Size  int
	Level goqr.RecoveryLevel
}

func New() *Encoder {
	return &Encoder{Size: 256, Level: goqr.Medium}
}

func (e *Encoder) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	png, err := goqr.Encode(content, e.Level, e.Size)
	if err != nil {
		return nil, fmt.Errorf("qrcode encode: %w", err)
	}
	return png, nil
}
