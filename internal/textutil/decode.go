package textutil

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding reports content that is neither UTF-8 nor BOM-marked UTF-16.
var ErrInvalidEncoding = errors.New("invalid text encoding")

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// Decode converts content into a UTF-8 string. A UTF-8 byte order mark is
// dropped and BOM-marked UTF-16 is transcoded; anything else must already be
// valid UTF-8.
func Decode(content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		content = content[3:]
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("decode: %w: not valid UTF-8", ErrInvalidEncoding)
	}
	return string(content), nil
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	if len(content)%2 != 0 {
		return "", fmt.Errorf("decode: %w: odd length UTF-16 input", ErrInvalidEncoding)
	}
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode: %w: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}
