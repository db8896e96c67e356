package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stairpath/pkg/errors"
)

// ReadTOML decodes a TOML layout from r.
//
// Unknown keys are rejected so that a typo such as "retrun" does not silently
// turn into a terminating staircase.
func ReadTOML(r io.Reader) (Layout, error) {
	var data fileLayout
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "unknown toml key %q", undecoded[0].String())
	}
	return data.layout()
}

// ReadJSON decodes a JSON layout from r.
func ReadJSON(r io.Reader) (Layout, error) {
	var data fileLayout
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return data.layout()
}

// Read decodes a layout in the given format.
func Read(r io.Reader, format Format) (Layout, error) {
	switch format {
	case FormatTOML:
		return ReadTOML(r)
	case FormatJSON:
		return ReadJSON(r)
	case FormatText, "":
		return ReadText(r)
	default:
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "unknown format %q", format)
	}
}

// Parse decodes a layout held in memory. An empty format is detected from
// the content: a leading '{' is JSON, a "[[staircase]]" table or a
// "moves =" key is TOML, anything else is text.
func Parse(data []byte, format Format) (Layout, error) {
	if format == "" {
		format = sniff(data)
	}
	return Read(bytes.NewReader(data), format)
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Import reads the layout file at path. An empty format is detected from the
// extension.
func Import(path string, format Format) (Layout, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Layout{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if format == "" {
		format = DetectFormat(path)
	}
	l, err := Read(f, format)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return FormatJSON
	case bytes.Contains(trimmed, []byte("[[staircase]]")), bytes.HasPrefix(trimmed, []byte("moves")):
		return FormatTOML
	default:
		return FormatText
	}
}
