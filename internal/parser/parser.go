package parser

import (
	"fmt"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

type Parser interface {
	Parse(file string) (*game.Content, []Warning, error)
}

// Warning is a level record that was skipped.
type Warning struct {
	Line   int
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %v: %v", w.Line, w.Reason)
}
