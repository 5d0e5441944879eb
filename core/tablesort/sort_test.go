package tablesort

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortStreets(t *testing.T) {
	lines := []string{
		"1\t\tresidential\t",
		"30\tB utca\tresidential\t",
		"4\tA utca\tservice\tdriveway",
		"200\tA utca\tresidential\t",
		"20\tA utca\tresidential\t",
	}

	got := SortStreets(lines)

	assert.Equal(t, []string{
		"20\tA utca\tresidential\t",
		"200\tA utca\tresidential\t",
		"4\tA utca\tservice\tdriveway",
		"30\tB utca\tresidential\t",
		"1\t\tresidential\t",
	}, got)
}

func TestSortStreets_NamelessLastRegardlessOfOID(t *testing.T) {
	got := SortStreets([]string{"0", "999\tZ utca", "1\t"})

	assert.Equal(t, "999\tZ utca", got[0])
	assert.ElementsMatch(t, []string{"0", "1\t"}, got[1:])
	// Both nameless rows fall back to the numeric oid.
	assert.Equal(t, []string{"999\tZ utca", "0", "1\t"}, got)
}

func TestSortHouseNumbers(t *testing.T) {
	lines := []string{
		"7\tA utca\t10\t1111\t\t",
		"6\tA utca\t9\t1111\t\t",
		"5\tA utca\t\t1111\tVilla\t",
		"4\tA utca\t\t1111\t\t",
		"3\tA utca\t2\t1000\t\t",
		"2\tB utca\t1\t1111\t\t",
		"1\tA utca\t9/a\t1111\t\t",
	}

	got := SortHouseNumbers(lines)

	assert.Equal(t, []string{
		"3\tA utca\t2\t1000\t\t",
		"4\tA utca\t\t1111\t\t",
		"5\tA utca\t\t1111\tVilla\t",
		"6\tA utca\t9\t1111\t\t",
		"1\tA utca\t9/a\t1111\t\t",
		"7\tA utca\t10\t1111\t\t",
		"2\tB utca\t1\t1111\t\t",
	}, got)
}

func TestSortHouseNumbers_ConscriptionAndTail(t *testing.T) {
	lines := []string{
		"1\tA utca\t\t1111\t\t12\tz",
		"2\tA utca\t\t1111\t\t3\tz",
		"3\tA utca\t\t1111\t\t3\ta",
		"4\tA utca\t\t1111\t\t3",
	}

	got := SortHouseNumbers(lines)

	assert.Equal(t, []string{
		"4\tA utca\t\t1111\t\t3",
		"3\tA utca\t\t1111\t\t3\ta",
		"2\tA utca\t\t1111\t\t3\tz",
		"1\tA utca\t\t1111\t\t12\tz",
	}, got)
}

func TestSortTSV_KeepsHeader(t *testing.T) {
	streets := "@id\tname\thighway\tservice\n2\tB utca\t\t\n1\tA utca\t\t"
	assert.Equal(t, "@id\tname\thighway\tservice\n1\tA utca\t\t\n2\tB utca\t\t", SortStreetsTSV(streets))

	housenumbers := "@id\taddr:street\taddr:housenumber\n2\tA utca\t3\n1\tA utca\t1"
	assert.Equal(t, "@id\taddr:street\taddr:housenumber\n1\tA utca\t1\n2\tA utca\t3", SortHouseNumbersTSV(housenumbers))
}

func TestProcessBody(t *testing.T) {
	reverse := func(lines []string) []string {
		out := make([]string, 0, len(lines))
		for i := len(lines) - 1; i >= 0; i-- {
			out = append(out, lines[i])
		}
		return out
	}

	assert.Equal(t, "h\nc\nb\na", ProcessBody(reverse, "h\na\nb\nc"))
	assert.Equal(t, "", ProcessBody(reverse, ""))
	assert.Equal(t, "only-header", ProcessBody(reverse, "only-header"))
	assert.Equal(t, "h\nb\na\n", ProcessBody(reverse, "h\na\nb\n"))
}

func TestSortNumerically(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "10", "10a"}, SortNumerically(strings.Fields("10a 10 2 1")))
}
