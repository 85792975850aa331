// Package textenc decodes score and dictionary files, which UTAU tools
// commonly save as Shift_JIS.
package textenc

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns b as UTF-8. Input that is already valid UTF-8 is returned
// without its byte order mark; anything else is decoded as Shift_JIS.
func Decode(b []byte) ([]byte, error) {
	if utf8.Valid(b) {
		return bytes.TrimPrefix(b, utf8BOM), nil
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("decode Shift_JIS: %w", err)
	}
	return out, nil
}

// ReadFile reads path and decodes it with Decode.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}
