package common

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

// EncodeBase64UTF8 encodes the UTF-8 bytes of s with standard padded Base64.
func EncodeBase64UTF8(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64UTF8 reverses EncodeBase64UTF8. It also accepts the URL-safe
// alphabet and missing padding, which is how token segments arrive.
func DecodeBase64UTF8(s string) (string, error) {
	b, err := decodeBase64Segment(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// decodeBase64Segment decodes standard or URL-safe Base64, padded or not.
func decodeBase64Segment(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	return base64.RawStdEncoding.DecodeString(s)
}
