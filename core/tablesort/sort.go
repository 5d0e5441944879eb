package tablesort

import (
	"sort"
	"strings"

	"housenumber-audit/core/utils"
)

// NumericKey is the split form of a numeric-aware field.
type NumericKey struct {
	Number    int
	Remainder string
}

func numericKey(s string) NumericKey {
	n, rest := utils.SplitHouseNumber(s)
	return NumericKey{Number: n, Remainder: rest}
}

func (k NumericKey) compare(other NumericKey) int {
	switch {
	case k.Number != other.Number:
		return compareInt(k.Number, other.Number)
	default:
		return strings.Compare(k.Remainder, other.Remainder)
	}
}

// StreetRowKey is the sort key of a street table row.
type StreetRowKey struct {
	MissingName bool
	Name        string
	Highway     string
	Service     string
	OID         NumericKey
}

// StreetKey builds the sort key of an "oid, name, highway, service" row.
// Streets without a name sort last; the object id is compared numerically.
func StreetKey(line string) StreetRowKey {
	field := strings.Split(line, "\t")
	name := nth(field, 1)
	return StreetRowKey{
		MissingName: name == "",
		Name:        name,
		Highway:     nth(field, 2),
		Service:     nth(field, 3),
		OID:         numericKey(nth(field, 0)),
	}
}

// Compare orders two street keys field by field.
func (k StreetRowKey) Compare(other StreetRowKey) int {
	if c := compareBool(k.MissingName, other.MissingName); c != 0 {
		return c
	}
	if c := strings.Compare(k.Name, other.Name); c != 0 {
		return c
	}
	if c := strings.Compare(k.Highway, other.Highway); c != 0 {
		return c
	}
	if c := strings.Compare(k.Service, other.Service); c != 0 {
		return c
	}
	return k.OID.compare(other.OID)
}

// HouseNumberRowKey is the sort key of a house-number table row.
type HouseNumberRowKey struct {
	Postcode     string
	HaveHouseID  bool
	HaveHouseNum bool
	Street       string
	HouseNumber  NumericKey
	HouseName    string
	Conscription NumericKey
	Tail         []string
	OID          NumericKey
}

// HouseNumberKey builds the sort key of an "oid, street, housenumber,
// postcode, housename, cons, ..." row.
//
// Within a postcode, rows without any identifier (house number, house name
// or conscription number) come first, then rows with a name or
// conscription number but no house number, then complete rows. House
// numbers, conscription numbers and object ids compare numerically.
func HouseNumberKey(line string) HouseNumberRowKey {
	field := strings.Split(line, "\t")
	housenumber := nth(field, 2)
	housename := nth(field, 4)
	cons := nth(field, 5)

	var tail []string
	if len(field) > 6 {
		tail = field[6:]
	}

	haveHouseNum := housenumber != ""
	return HouseNumberRowKey{
		Postcode:     nth(field, 3),
		HaveHouseID:  haveHouseNum || housename != "" || cons != "",
		HaveHouseNum: haveHouseNum,
		Street:       nth(field, 1),
		HouseNumber:  numericKey(housenumber),
		HouseName:    housename,
		Conscription: numericKey(cons),
		Tail:         tail,
		OID:          numericKey(nth(field, 0)),
	}
}

// Compare orders two house-number keys field by field.
func (k HouseNumberRowKey) Compare(other HouseNumberRowKey) int {
	if c := strings.Compare(k.Postcode, other.Postcode); c != 0 {
		return c
	}
	if c := compareBool(k.HaveHouseID, other.HaveHouseID); c != 0 {
		return c
	}
	if c := compareBool(k.HaveHouseNum, other.HaveHouseNum); c != 0 {
		return c
	}
	if c := strings.Compare(k.Street, other.Street); c != 0 {
		return c
	}
	if c := k.HouseNumber.compare(other.HouseNumber); c != 0 {
		return c
	}
	if c := strings.Compare(k.HouseName, other.HouseName); c != 0 {
		return c
	}
	if c := k.Conscription.compare(other.Conscription); c != 0 {
		return c
	}
	if c := compareStrings(k.Tail, other.Tail); c != 0 {
		return c
	}
	return k.OID.compare(other.OID)
}

// SortStreets sorts the body lines of a street table.
func SortStreets(lines []string) []string {
	return sortByKey(lines, StreetKey, StreetRowKey.Compare)
}

// SortHouseNumbers sorts the body lines of a house-number table.
func SortHouseNumbers(lines []string) []string {
	return sortByKey(lines, HouseNumberKey, HouseNumberRowKey.Compare)
}

// SortNumerically sorts plain tokens by their numeric value.
func SortNumerically(tokens []string) []string {
	return utils.SortNumerically(tokens)
}

// SortStreetsTSV sorts a whole street table, keeping its header first.
func SortStreetsTSV(data string) string {
	return ProcessBody(SortStreets, data)
}

// SortHouseNumbersTSV sorts a whole house-number table, keeping its header
// first.
func SortHouseNumbersTSV(data string) string {
	return ProcessBody(SortHouseNumbers, data)
}

// ProcessBody applies fn to every line but the first one of a
// newline-separated table. A trailing newline stays at the end.
func ProcessBody(fn func([]string) []string, data string) string {
	trailing := strings.HasSuffix(data, "\n")
	if trailing {
		data = strings.TrimSuffix(data, "\n")
	}
	lines := strings.Split(data, "\n")
	result := append([]string{lines[0]}, fn(lines[1:])...)
	out := strings.Join(result, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// sortByKey computes every key once, then sorts stably on the keys.
func sortByKey[K any](lines []string, key func(string) K, compare func(K, K) int) []string {
	type keyed struct {
		key  K
		line string
	}
	items := make([]keyed, len(lines))
	for i, line := range lines {
		items[i] = keyed{key: key(line), line: line}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return compare(items[i].key, items[j].key) < 0
	})

	sorted := make([]string, len(items))
	for i, item := range items {
		sorted[i] = item.line
	}
	return sorted
}

func nth(field []string, index int) string {
	if index < len(field) {
		return field[index]
	}
	return ""
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareStrings(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}
