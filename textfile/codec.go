package textfile

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"inventory-app/apperrors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeLegacyText decodes the raw bytes of a source feed. The feeds are
// written in Windows-1252, one byte per character, with accented characters
// above the 7-bit range; reading them as UTF-8 would mangle every accent.
func DecodeLegacyText(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrCodec, err)
	}
	return string(decoded), nil
}

// SplitLines splits decoded feed text into logical lines, accepting both
// CRLF and LF terminators. Callers skip blank lines, which also drops the
// empty trailing line after the final terminator.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
