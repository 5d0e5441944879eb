package reference

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrParse is returned when a row of the reference table does not have
// exactly four columns.
var ErrParse = errors.New("reference table parse error")

// columns is the fixed width of the reference table:
// refmegye, reftelepules, street, housenumber.
const columns = 4

// Cache is the reference table indexed as
// refmegye -> reftelepules -> street -> house numbers.
// House numbers keep their table order and may repeat.
type Cache map[string]map[string]map[string][]string

// Lookup returns the house numbers of a street. Missing keys yield nil.
func (c Cache) Lookup(refmegye, reftelepules, street string) []string {
	return c[refmegye][reftelepules][street]
}

// Rows returns the number of house-number entries in the cache.
func (c Cache) Rows() int {
	n := 0
	for _, settlements := range c {
		for _, streets := range settlements {
			for _, numbers := range streets {
				n += len(numbers)
			}
		}
	}
	return n
}

func (c Cache) add(refmegye, reftelepules, street, housenumber string) {
	settlements, ok := c[refmegye]
	if !ok {
		settlements = make(map[string]map[string][]string)
		c[refmegye] = settlements
	}
	streets, ok := settlements[reftelepules]
	if !ok {
		streets = make(map[string][]string)
		settlements[reftelepules] = streets
	}
	streets[street] = append(streets[street], housenumber)
}

// Parse reads a tab-separated reference table. The first line is a header
// and is skipped; every other line must have exactly four columns.
func Parse(r io.Reader) (Cache, error) {
	cache := Cache{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}

		fields := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if len(fields) != columns {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrParse, lineNo, len(fields), columns)
		}
		cache.add(fields[0], fields[1], fields[2], fields[3])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reference table: %w", err)
	}

	return cache, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference table: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
