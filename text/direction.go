package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the base writing direction of a line.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// DetectDirection returns the direction of the first bidi run in s.
func DetectDirection(s string) Direction {
	if s == "" {
		return LTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return LTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return LTR
	}
	if r := ordering.Run(0); r.Direction() == bidi.RightToLeft {
		return RTL
	}
	return LTR
}

func (d Direction) shaping() di.Direction {
	if d == RTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
