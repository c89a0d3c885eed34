package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

// Level files hold one record per line:
//
//	Lane,<laneType>,<x>
//	<laneType>,<noteKind>,<appearanceFrame>
//
// A lane must be declared before its notes.
type DefaultParser struct{}

const laneRecord = "Lane"

func (p *DefaultParser) Parse(file string) (*game.Content, []Warning, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open level: %w", err)
	}
	defer f.Close()

	content, warnings, err := p.Read(f)
	if nil != err {
		return nil, warnings, fmt.Errorf("unable to read %v: %w", file, err)
	}
	return content, warnings, nil
}

func (p *DefaultParser) Read(r io.Reader) (*game.Content, []Warning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	content := &game.Content{}
	warnings := []Warning{}
	lanes := map[string]bool{}

	skip := func(line int, format string, a ...interface{}) {
		warnings = append(warnings, Warning{Line: line, Reason: fmt.Sprintf(format, a...)})
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			skip(perr.Line, "%v", perr.Err)
			continue
		} else if nil != err {
			return nil, warnings, err
		}
		line, _ := cr.FieldPos(0)

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if len(record) != 3 {
			skip(line, "expected 3 fields, got %v", len(record))
			continue
		}

		if record[0] == laneRecord {
			laneType := record[1]
			key, ok := game.LaneKey(laneType)
			if !ok {
				skip(line, "unknown lane type %q", laneType)
				continue
			}
			if lanes[laneType] {
				skip(line, "duplicate lane %q", laneType)
				continue
			}
			x, err := strconv.Atoi(record[2])
			if nil != err {
				skip(line, "bad lane position %q", record[2])
				continue
			}
			lanes[laneType] = true
			content.Lanes = append(content.Lanes, game.LaneRecord{Type: laneType, Key: key, X: x})
			continue
		}

		if !lanes[record[0]] {
			skip(line, "note for unknown lane %q", record[0])
			continue
		}
		kind, ok := game.ParseKind(record[1])
		if !ok {
			skip(line, "unknown note kind %q", record[1])
			continue
		}
		frame, err := strconv.Atoi(record[2])
		if nil != err || frame < 0 {
			skip(line, "bad appearance frame %q", record[2])
			continue
		}
		content.Notes = append(content.Notes, game.NoteRecord{Lane: record[0], Kind: kind, Frame: frame})
	}

	// Lanes score in appearance order
	sort.SliceStable(content.Notes, func(i, j int) bool {
		return content.Notes[i].Frame < content.Notes[j].Frame
	})

	return content, warnings, nil
}
