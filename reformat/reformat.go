// Package reformat converts hex digit strings into C-style byte arrays and
// renders raw text as binary digits.
package reformat

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const binaryPrefix = "Binary: "

// Reformat applies the transform named by selector to raw.
//
// An empty selector trims raw and renders it as a hex array, "bin" renders
// every byte of raw as eight binary digits. Any other selector fails with an
// *InvalidFormatError.
func Reformat(raw, selector string) (string, error) {
	formatter, err := NewFormatter(selector)
	if err != nil {
		return "", err
	}
	return formatter.Format(raw)
}

// Normalize strips spaces and then every lowercase "0x" from input.
func Normalize(input string) string {
	return strings.ReplaceAll(strings.ReplaceAll(input, " ", ""), "0x", "")
}

// HexToArray renders input as "{ 0xDE, 0xAD }". Chunks are not validated as
// hex digits, they are only uppercased.
func HexToArray(input string) (string, error) {
	normalized := Normalize(input)
	if len(normalized)%2 != 0 {
		return "", &OddLengthError{Normalized: normalized}
	}

	tokens := make([]string, 0, len(normalized)/2)
	for i := 0; i < len(normalized); i += 2 {
		tokens = append(tokens, "0x"+upperChunk(normalized[i:i+2]))
	}

	// Zero tokens still render as "{  }".
	return "{ " + strings.Join(tokens, ", ") + " }", nil
}

// ToBinary renders each byte of input as eight zero-padded binary digits.
func ToBinary(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 8)
	for i := 0; i < len(input); i++ {
		fmt.Fprintf(&b, "%08b", input[i])
	}
	return b.String()
}

// upperChunk uppercases a byte pair. A pair that splits a multi-byte rune is
// not valid UTF-8, so only its ASCII letters change and other bytes pass through.
func upperChunk(chunk string) string {
	if utf8.ValidString(chunk) {
		return strings.ToUpper(chunk)
	}
	return upperASCII(chunk)
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
