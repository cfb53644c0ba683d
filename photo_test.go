package rirekisho_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hikarutsuji/rirekisho"
)

// Minimal byte headers http.DetectContentType sniffs as each image type.
var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF")
)

func TestEncodePhoto_AcceptedTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngHeader, "data:image/png;base64,"},
		{"jpeg", jpegHeader, "data:image/jpeg;base64,"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := rirekisho.EncodePhoto(tt.data)
			if err != nil {
				t.Fatalf("EncodePhoto: %v", err)
			}
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("EncodePhoto prefix = %q, want %q", got[:30], tt.want)
			}
		})
	}
}

func TestEncodePhoto_RejectsWrongType(t *testing.T) {
	t.Parallel()

	_, err := rirekisho.EncodePhoto([]byte("GIF89a..."))
	if !errors.Is(err, rirekisho.ErrPhotoType) {
		t.Errorf("err = %v, want ErrPhotoType", err)
	}
}

func TestEncodePhoto_RejectsOversized(t *testing.T) {
	t.Parallel()

	data := append(bytes.Clone(pngHeader), make([]byte, rirekisho.MaxPhotoBytes)...)
	_, err := rirekisho.EncodePhoto(data)
	if !errors.Is(err, rirekisho.ErrPhotoSize) {
		t.Errorf("err = %v, want ErrPhotoSize", err)
	}
}

func TestEncodePhoto_TypeCheckedBeforeSize(t *testing.T) {
	t.Parallel()

	// Oversized and of the wrong type: the type message wins.
	data := append([]byte("GIF89a"), make([]byte, rirekisho.MaxPhotoBytes)...)
	_, err := rirekisho.EncodePhoto(data)
	if !errors.Is(err, rirekisho.ErrPhotoType) {
		t.Errorf("err = %v, want ErrPhotoType", err)
	}
}

func TestEncodePhoto_BoundarySize(t *testing.T) {
	t.Parallel()

	data := append(bytes.Clone(pngHeader), make([]byte, rirekisho.MaxPhotoBytes-len(pngHeader))...)
	if _, err := rirekisho.EncodePhoto(data); err != nil {
		t.Errorf("exactly MaxPhotoBytes should be accepted, got %v", err)
	}
}
