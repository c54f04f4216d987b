package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions, as they occur as values of
// properties like "width" or "margin-top".
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// Dimen interprets a property value as a CSS dimension. Supported are the
// keywords "auto", "inherit" and "initial", %-relative values, and
// absolute values in points ("pt"). Everything else flags an error.
func (p Property) Dimen() (DimenT, error) {
	s := strings.TrimSpace(p.String())
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	}
	if strings.HasSuffix(s, "%") {
		n := strings.TrimSpace(strings.TrimSuffix(s, "%"))
		i, err := strconv.Atoi(n)
		if err != nil {
			return DimenT{}, fmt.Errorf("not a percentage value: %q", p)
		}
		return Percentage(percent.FromInt(i)), nil
	}
	if strings.HasSuffix(s, "pt") {
		n := strings.TrimSpace(strings.TrimSuffix(s, "pt"))
		i, err := strconv.Atoi(n)
		if err != nil {
			return DimenT{}, fmt.Errorf("not a point value: %q", p)
		}
		return JustDimen(dimen.DU(i) * dimen.PT), nil
	}
	return DimenT{}, fmt.Errorf("not a dimension value: %q", p)
}

// --- Matching --------------------------------------------------------------

func (d DimenT) Match() *DimenMatcher {
	return &DimenMatcher{dimen: d}
}

type DimenMatcher struct {
	dimen DimenT
}

func (m *DimenMatcher) IsKind(d DimenT) *DimenMatcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

func (m *DimenMatcher) Just(du *dimen.DU) *DimenMatcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *DimenMatcher) Percentage(p *percent.Percent) *DimenMatcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
