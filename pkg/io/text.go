package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/stairpath/pkg/errors"
	"github.com/matzehuels/stairpath/pkg/stair"
)

// ReadText decodes the puzzle notation described in the package doc.
func ReadText(r io.Reader) (Layout, error) {
	var (
		ids    []int
		stairs []stair.Staircase
		moves  []uint
		found  bool
	)

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case isStaircaseName(strings.Fields(text)[0]):
			id, st, err := parseStaircaseLine(text)
			if err != nil {
				return Layout{}, fmt.Errorf("line %d: %w", line, err)
			}
			ids = append(ids, id)
			stairs = append(stairs, st)
		default:
			if found {
				return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "line %d: moves declared twice", line)
			}
			m, err := parseMovesLine(text)
			if err != nil {
				return Layout{}, fmt.Errorf("line %d: %w", line, err)
			}
			moves, found = m, true
		}
	}
	if err := sc.Err(); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read layout")
	}
	if !found {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "no moves line")
	}

	placed, err := place(ids, stairs)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Staircases: placed, Moves: moves}, nil
}

// parseStaircaseLine parses "S2 : 2 -> 4 : FROM S1 TO S1".
func parseStaircaseLine(line string) (int, stair.Staircase, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 10 || tokens[1] != ":" || tokens[3] != "->" || tokens[5] != ":" ||
		!strings.EqualFold(tokens[6], "FROM") || !strings.EqualFold(tokens[8], "TO") {
		return 0, stair.Staircase{}, errors.New(errors.ErrCodeInvalidFormat,
			"expected \"S<id> : <begin> -> <end> : FROM <link> TO <link>\", got %q", line)
	}

	id, err := strconv.Atoi(tokens[0][1:])
	if err != nil {
		return 0, stair.Staircase{}, errors.New(errors.ErrCodeInvalidFormat, "invalid staircase name %q", tokens[0])
	}
	begin, err := strconv.ParseUint(tokens[2], 10, 0)
	if err != nil {
		return 0, stair.Staircase{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid begin %q", tokens[2])
	}
	end, err := strconv.ParseUint(tokens[4], 10, 0)
	if err != nil {
		return 0, stair.Staircase{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid end %q", tokens[4])
	}
	feeding, err := parseLink(tokens[7], "START")
	if err != nil {
		return 0, stair.Staircase{}, err
	}
	returning, err := parseLink(tokens[9], "END")
	if err != nil {
		return 0, stair.Staircase{}, err
	}

	return id, stair.Staircase{
		Begin:     stair.StepRank(begin),
		End:       stair.StepRank(end),
		Feeding:   feeding,
		Returning: returning,
	}, nil
}

// isStaircaseName reports whether tok looks like "S<digits>".
func isStaircaseName(tok string) bool {
	if len(tok) < 2 || tok[0] != 'S' {
		return false
	}
	for _, r := range tok[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseMovesLine parses "Possible Moves : 1, 2, 3". The label is free text.
func parseMovesLine(line string) ([]uint, error) {
	_, list, ok := strings.Cut(line, ":")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "expected \"<label> : <n>, <n>...\", got %q", line)
	}
	var moves []uint
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.ParseUint(tok, 10, 0)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid move %q", tok)
		}
		moves = append(moves, uint(n))
	}
	return moves, nil
}

// WriteText encodes l in the puzzle notation.
func WriteText(l Layout, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, st := range l.Staircases {
		fmt.Fprintf(bw, "S%d : %d -> %d : FROM %s TO %s\n", i+1, st.Begin, st.End,
			formatLink(st.Feeding, "START"), formatLink(st.Returning, "END"))
	}
	parts := make([]string, len(l.Moves))
	for i, m := range l.Moves {
		parts[i] = strconv.FormatUint(uint64(m), 10)
	}
	fmt.Fprintf(bw, "\nPossible Moves : %s\n", strings.Join(parts, ", "))
	return bw.Flush()
}
