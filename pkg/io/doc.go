// Package io reads and writes staircase layouts.
//
// # Overview
//
// A [Layout] is the raw input of the engine: the staircase list and the
// allowed move sizes, before validation. Three encodings are supported.
//
// # Text Format
//
// The puzzle notation, one staircase per line, a blank line, then the moves:
//
//	S1 : 0 -> 6 : FROM START TO END
//	S2 : 2 -> 4 : FROM S1 TO S1
//
//	Possible Moves : 1, 2
//
// FROM names the feeding staircase (START for the primary corridor) and TO
// the returning staircase (END when the staircase terminates). Staircase
// lines may appear in any order but ids must run from 1 without gaps.
//
// # TOML and JSON Formats
//
// Both use the same shape:
//
//	moves = [1, 2]
//
//	[[staircase]]
//	begin = 0
//	end = 6
//	from = "START"
//	to = "END"
//
// In JSON the staircases live in a "staircase" array. An optional "id" field
// places a staircase explicitly; without it, position in the array decides.
//
// # Detection
//
// [Import] picks the decoder from the file extension (.toml, .json, anything
// else is text) unless a format is given explicitly.
//
// # Errors
//
// Malformed input is reported as an [errors.ErrCodeInvalidFormat] error with
// the offending line or field. Structural problems (dangling links, spans out
// of range) are left to [stair.NewSet], called by [Layout.Build].
//
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/stairpath/pkg/errors
// [stair.NewSet]: github.com/matzehuels/stairpath/pkg/stair
package io
