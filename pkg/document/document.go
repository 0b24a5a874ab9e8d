// Package document reads rules documents into normalized text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidEncoding is returned when a document is not valid UTF-8 after
// byte-order-mark handling.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// Read reads the file at path and returns its text.
//
// A UTF-8 byte order mark is stripped, UTF-16 content is decoded when it
// carries a byte order mark, line endings are normalized to "\n" and the
// result is NFC-normalized. The file is
// closed on every path.
func Read(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text, err := Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return text, nil
}

// Decode converts raw file bytes to normalized text. CRLF and lone CR line
// endings both become LF.
func Decode(raw []byte) (string, error) {
	decoded := raw
	if hasUTF16BOM(raw) {
		// BOMOverride switches to the encoding named by the BOM and strips it.
		decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		out, _, err := transform.Bytes(decoder, raw)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		decoded = out
	} else {
		decoded = bytes.TrimPrefix(decoded, utf8BOM)
	}

	if !utf8.Valid(decoded) {
		return "", ErrInvalidEncoding
	}

	return norm.NFC.String(lineEndings.Replace(string(decoded))), nil
}

//nolint:gochecknoglobals // Read-only byte sequences.
var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

//nolint:gochecknoglobals // Stateless replacer.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func hasUTF16BOM(raw []byte) bool {
	return bytes.HasPrefix(raw, utf16LEBOM) || bytes.HasPrefix(raw, utf16BEBOM)
}
