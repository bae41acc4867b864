package chemdb

import (
	"minichem/internal/ptable"
)

// Activity is the coarse activity class of a metal.
type Activity string

const (
	Active          Activity = "active"
	MiddleActive    Activity = "middle active"
	Inactive        Activity = "inactive"
	UnknownActivity Activity = "unknown"
)

// series lists the activity series in decreasing activity. Hydrogen
// splits the metals that displace it from acids from those that do
// not.
var series = []ptable.Element{
	ptable.Li, ptable.K, ptable.Ba, ptable.Ca, ptable.Na,
	ptable.Mg, ptable.Al, ptable.Mn, ptable.Zn, ptable.Cr,
	ptable.Fe, ptable.Ni, ptable.Sn, ptable.Pb,
	ptable.H,
	ptable.W, ptable.Cu, ptable.Hg, ptable.Ag, ptable.Pt, ptable.Au,
}

// ActivitySeries compares metal activity. Metals outside the series
// are mapped onto a series member of similar activity first, see
// Estimate.
type ActivitySeries struct {
	elements []ptable.Element
}

// NewActivitySeries returns the built-in series.
func NewActivitySeries() *ActivitySeries {
	return &ActivitySeries{elements: series}
}

// Elements returns the series in decreasing activity.
func (a *ActivitySeries) Elements() []ptable.Element {
	return append([]ptable.Element(nil), a.elements...)
}

// Contains reports whether el is a series member.
func (a *ActivitySeries) Contains(el ptable.Element) bool {
	return a.indexOf(el) >= 0
}

func (a *ActivitySeries) indexOf(el ptable.Element) int {
	for i, e := range a.elements {
		if e.Equal(el) {
			return i
		}
	}
	return -1
}

// checkMetal rejects elements outside the metallic division. Hydrogen
// passes when includeHydrogen is set, because the series contains it
// as the reference point.
func checkMetal(el ptable.Element, includeHydrogen bool) error {
	if el.IsMetal() {
		return nil
	}
	if includeHydrogen && el.Equal(ptable.H) {
		return nil
	}
	return &NotMetalError{Symbol: el.Symbol}
}

// Activity classifies a metal by empirical rules derived from the
// series: A-group metals of the first two groups are active; B-group
// metals below copper's electronegativity, A-group metals past group
// two, nickel and hydrogen are middle active; the remaining B-group
// metals are inactive. Elements past rutherfordium are unknown.
func (a *ActivitySeries) Activity(el ptable.Element) (Activity, error) {
	if err := checkMetal(el, true); err != nil {
		return "", err
	}
	if el.Equal(ptable.H) || el.Equal(ptable.Ni) {
		return MiddleActive, nil
	}
	if el.AtomicNumber >= 104 {
		return UnknownActivity, nil
	}

	groupNumber := int(el.Group[0] - '0')
	letter := el.Group[1]

	switch {
	case letter == 'A' && groupNumber <= 2:
		return Active, nil
	case letter == 'A':
		return MiddleActive, nil
	case el.REN < 1.90:
		return MiddleActive, nil
	default:
		return Inactive, nil
	}
}

// Estimate maps a metal outside the series onto the series member of
// the most similar activity. Active metals are matched by
// electronegativity within their own A group, middle active metals by
// electronegativity over the whole series. For inactive metals no
// property tracks activity well, so the estimate falls back to a
// fixed representative per region: platinum for group 8B, silver for
// groups 1B and 2B, tungsten otherwise.
func (a *ActivitySeries) Estimate(el ptable.Element) (ptable.Element, error) {
	if err := checkMetal(el, false); err != nil {
		return ptable.Element{}, err
	}
	act, err := a.Activity(el)
	if err != nil {
		return ptable.Element{}, err
	}

	switch act {
	case Active:
		var among []ptable.Element
		column := ptable.GroupFirstA
		if el.Group == "2A" {
			column = ptable.GroupSecondA
		}
		for _, e := range a.elements {
			for _, c := range column {
				if e.Equal(c) {
					among = append(among, e)
				}
			}
		}
		return closestByREN(el, among), nil

	case MiddleActive:
		return closestByREN(el, a.elements), nil

	case Inactive:
		switch {
		case el.Group == "8B":
			return ptable.Pt, nil
		case el.Group[0] == '1' || el.Group[0] == '2':
			return ptable.Ag, nil
		default:
			return ptable.W, nil
		}

	default:
		return ptable.Element{}, notFound(KindActivity, el.Symbol)
	}
}

// closestByREN picks the candidate with the nearest electronegativity.
func closestByREN(el ptable.Element, among []ptable.Element) ptable.Element {
	closest := among[0]
	for _, candidate := range among[1:] {
		if absFloat(candidate.REN-el.REN) < absFloat(closest.REN-el.REN) {
			closest = candidate
		}
	}
	return closest
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Compare returns the more active of the two elements, or the more
// inert one when returnActive is false. Either element may be
// hydrogen, which lets callers test whether a metal displaces
// hydrogen from acids.
func (a *ActivitySeries) Compare(el1, el2 ptable.Element, returnActive bool) (ptable.Element, error) {
	if err := checkMetal(el1, true); err != nil {
		return ptable.Element{}, err
	}
	if err := checkMetal(el2, true); err != nil {
		return ptable.Element{}, err
	}

	avatar1, avatar2 := el1, el2
	var err error
	if !a.Contains(el1) {
		if avatar1, err = a.Estimate(el1); err != nil {
			return ptable.Element{}, err
		}
	}
	if !a.Contains(el2) {
		if avatar2, err = a.Estimate(el2); err != nil {
			return ptable.Element{}, err
		}
	}

	// Lower index means higher activity.
	firstMoreActive := a.indexOf(avatar1) <= a.indexOf(avatar2)
	if firstMoreActive == returnActive {
		return el1, nil
	}
	return el2, nil
}

// MoreActive returns the more active of the two metals.
func (a *ActivitySeries) MoreActive(el1, el2 ptable.Element) (ptable.Element, error) {
	return a.Compare(el1, el2, true)
}

// MoreInert returns the less active of the two metals.
func (a *ActivitySeries) MoreInert(el1, el2 ptable.Element) (ptable.Element, error) {
	return a.Compare(el1, el2, false)
}
