package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vortex-fintech/go-phone/phone"
)

// step is one line of a replay script.
//
//	+TEXT      host edit inserting, field text becomes TEXT
//	-TEXT      host edit deleting, field text becomes TEXT
//	undo       history undo
//	redo       history redo
//	key COMBO  key press such as ctrl+z or ctrl+shift+z
//
// Blank lines and lines starting with # are skipped.
type step struct {
	line int
	ev   phone.Event
	op   string
}

func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		raw := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(raw) == "" || strings.HasPrefix(strings.TrimSpace(raw), "#") {
			continue
		}

		st, err := parseStep(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		st.line = n
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parseStep(raw string) (step, error) {
	switch raw[0] {
	case '+':
		return step{ev: phone.Event{Edit: &phone.Edit{Text: raw[1:], Intent: phone.Insertion}}}, nil
	case '-':
		return step{ev: phone.Event{Edit: &phone.Edit{Text: raw[1:], Intent: phone.Deletion}}}, nil
	}

	word, rest, _ := strings.Cut(strings.TrimSpace(raw), " ")
	switch strings.ToLower(word) {
	case "undo", "redo":
		if rest != "" {
			return step{}, fmt.Errorf("%s takes no argument", word)
		}
		return step{op: strings.ToLower(word)}, nil
	case "key":
		k, err := phone.ParseKeyPress(rest)
		if err != nil {
			return step{}, err
		}
		return step{ev: phone.Event{Key: &k}}, nil
	default:
		return step{}, fmt.Errorf("unknown command %q", word)
	}
}
