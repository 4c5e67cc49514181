package openings

import (
	"fmt"
	"strings"
)

// Group is a major occupancy group of the building code (A to F).
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
	GroupC Group = "C"
	GroupD Group = "D"
	GroupE Group = "E"
	GroupF Group = "F"
)

func ParseGroup(s string) (Group, error) {
	g := Group(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: occupancy group %q", ErrUnknownSelector, s)
	}
	return g, nil
}

func (g Group) Valid() bool {
	switch g {
	case GroupA, GroupB, GroupC, GroupD, GroupE, GroupF:
		return true
	}
	return false
}

// TableCode names one of the reference tables 3.2.3.1-B to 3.2.3.1-E.
type TableCode string

const (
	TableB TableCode = "B"
	TableC TableCode = "C"
	TableD TableCode = "D"
	TableE TableCode = "E"
)

var TableCodes = []TableCode{TableB, TableC, TableD, TableE}

// Categorized reports whether the table is keyed by aspect-ratio category.
func (c TableCode) Categorized() bool {
	return c == TableB || c == TableC
}

// SelectTable picks the reference table for an occupancy.
// Group E and group F divisions 1 and 2 use the stricter tables (C, E);
// sprinkler protection selects the D/E pair over B/C.
// Division is only looked at for group F.
func SelectTable(group Group, division int, sprinklered bool) (TableCode, error) {
	if !group.Valid() {
		return "", fmt.Errorf("%w: occupancy group %q", ErrUnknownSelector, group)
	}
	highHazard := group == GroupE || (group == GroupF && (division == 1 || division == 2))
	switch {
	case sprinklered && highHazard:
		return TableE, nil
	case sprinklered:
		return TableD, nil
	case highHazard:
		return TableC, nil
	default:
		return TableB, nil
	}
}
