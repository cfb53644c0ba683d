package rirekisho

import (
	"encoding/base64"
	"errors"
	"net/http"
)

// MaxPhotoBytes is the upper bound on an ID photo file.
const MaxPhotoBytes = 8 << 20

// Photo validation failures, worded for direct display.
var (
	ErrPhotoType = errors.New("証明写真は JPEG または PNG を選択してください。")
	ErrPhotoSize = errors.New("証明写真は 8MB 以下の画像を選択してください。")
)

var photoMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// EncodePhoto validates an ID photo and encodes it as a data URL for
// FormState.PhotoDataURL. The content type is sniffed from the bytes,
// never taken from a file name, and is checked before the size so a
// rejected file gets the most specific message.
func EncodePhoto(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	if !photoMIMETypes[mime] {
		return "", ErrPhotoType
	}
	if len(data) > MaxPhotoBytes {
		return "", ErrPhotoSize
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
