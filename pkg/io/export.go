package io

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
)

// WriteJSON encodes l as indented JSON. The output can be re-read with
// [ReadJSON].
func WriteJSON(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fromLayout(l))
}

// WriteTOML encodes l as TOML. The output can be re-read with [ReadTOML].
func WriteTOML(l Layout, w io.Writer) error {
	return toml.NewEncoder(w).Encode(fromLayout(l))
}

// Write encodes l in the given format.
func Write(l Layout, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(l, w)
	case FormatTOML:
		return WriteTOML(l, w)
	default:
		return WriteText(l, w)
	}
}

// Canonical returns a stable encoding of l, independent of the format it was
// read from. It is the input to cache keys.
func Canonical(l Layout) []byte {
	moves := slices.Clone(l.Moves)
	slices.Sort(moves)
	l.Moves = slices.Compact(moves)

	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(fromLayout(l))
	return buf.Bytes()
}
