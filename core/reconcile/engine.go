package reconcile

import (
	"sort"
	"strings"

	"housenumber-audit/core/normalize"
)

// Diff compares the reference and OSM house numbers of every OSM street.
//
// Streets come from the name column of both OSM tables. Each street is
// looked up in the reference under its refstreets name, and both sides are
// normalized with the street's policy. Numbers only found in the reference
// make the street suspicious; numbers found on both sides make it done.
func Diff(in Input) *Report {
	report := &Report{
		Suspicious: []StreetNumbers{},
		Done:       []StreetNumbers{},
	}

	streets := StreetNames(in.StreetRows, in.HouseNumberRows)
	refStreets := make(map[string]string, len(streets))
	owners := make(map[string]struct{}, len(streets))
	for _, street := range streets {
		refStreet := street
		if mapped, ok := in.RefStreets[street]; ok {
			refStreet = mapped
		}
		refStreets[street] = refStreet
		owners[refStreet] = struct{}{}
	}
	refIndex := indexReference(in.ReferenceLines, owners)
	osmIndex := indexHouseNumbers(in.HouseNumberRows)

	for _, street := range streets {
		refStreet := refStreets[street]

		var refNumbers []string
		for _, entry := range refIndex[refStreet] {
			// Lines of a longer street that merely starts with this name are
			// still matched, but their tokens are not this street's drops.
			if entry.owned {
				refNumbers = append(refNumbers, normalize.Normalize(entry.raw, street, in.Policy, &report.Diagnostics)...)
			} else {
				refNumbers = append(refNumbers, normalize.Accepted(entry.raw, street, in.Policy)...)
			}
		}
		refNumbers = normalize.Unique(refNumbers)

		var osmNumbers []string
		for _, raw := range osmIndex[street] {
			osmNumbers = append(osmNumbers, normalize.Normalize(raw, street, in.Policy, &report.Diagnostics)...)
		}
		osmNumbers = normalize.Unique(osmNumbers)

		onlyInReference := OnlyInFirst(refNumbers, osmNumbers)
		inBoth := InBoth(refNumbers, osmNumbers)
		if len(onlyInReference) > 0 {
			report.Suspicious = append(report.Suspicious, StreetNumbers{Street: street, HouseNumbers: onlyInReference})
		}
		if len(inBoth) > 0 {
			report.Done = append(report.Done, StreetNumbers{Street: street, HouseNumbers: inBoth})
		}
	}

	// Longest list first; ties keep street name order
	sort.SliceStable(report.Suspicious, func(i, j int) bool {
		return len(report.Suspicious[i].HouseNumbers) > len(report.Suspicious[j].HouseNumbers)
	})

	report.Summary = summarize(len(streets), report)
	return report
}

// StreetNames returns the sorted, distinct street names (second column)
// of the given tables. Rows without a second column are ignored.
func StreetNames(tables ...[][]string) []string {
	seen := make(map[string]struct{})
	for _, rows := range tables {
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			seen[row[1]] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OnlyInFirst returns the items of first missing from second, in the order
// of first.
func OnlyInFirst(first, second []string) []string {
	lookup := toSet(second)
	var ret []string
	for _, item := range first {
		if _, ok := lookup[item]; !ok {
			ret = append(ret, item)
		}
	}
	return ret
}

// InBoth returns the items of first also present in second, in the order
// of first.
func InBoth(first, second []string) []string {
	lookup := toSet(second)
	var ret []string
	for _, item := range first {
		if _, ok := lookup[item]; ok {
			ret = append(ret, item)
		}
	}
	return ret
}

// refEntry is the remainder of a reference line after a street prefix.
type refEntry struct {
	raw string
	// owned is set when the prefix is the longest known street the line
	// starts with.
	owned bool
}

// indexReference groups "<street> <number>" lines by every possible street
// prefix, so a street matches exactly the lines starting with "<street> ".
// Each line is owned by the longest prefix found in owners.
func indexReference(lines []string, owners map[string]struct{}) map[string][]refEntry {
	index := make(map[string][]refEntry)
	for _, line := range lines {
		line = strings.TrimSpace(line)

		owner := -1
		for i := 0; i < len(line); i++ {
			if line[i] != ' ' {
				continue
			}
			if _, ok := owners[line[:i]]; ok {
				owner = i
			}
		}

		for i := 0; i < len(line); i++ {
			if line[i] == ' ' {
				index[line[:i]] = append(index[line[:i]], refEntry{raw: line[i+1:], owned: i == owner})
			}
		}
	}
	return index
}

// indexHouseNumbers groups the housenumber column by the street column.
func indexHouseNumbers(rows [][]string) map[string][]string {
	index := make(map[string][]string)
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		index[row[1]] = append(index[row[1]], row[2])
	}
	return index
}

func summarize(streets int, report *Report) Summary {
	s := Summary{
		Streets:           streets,
		SuspiciousStreets: len(report.Suspicious),
		DoneStreets:       len(report.Done),
	}
	for _, entry := range report.Suspicious {
		s.MissingNumbers += len(entry.HouseNumbers)
	}
	for _, entry := range report.Done {
		s.DoneNumbers += len(entry.HouseNumbers)
	}

	s.Percent = 100
	if total := s.MissingNumbers + s.DoneNumbers; total > 0 {
		s.Percent = float64(s.DoneNumbers) * 100 / float64(total)
	}
	return s
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
