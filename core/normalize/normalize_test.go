package normalize

import (
	"testing"

	"housenumber-audit/core/ranges"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	filtered := Policy{
		"Filtered utca": ranges.Set{ranges.New(1, 11), ranges.New(2, 12)},
	}

	tests := []struct {
		name   string
		raw    string
		street string
		policy Policy
		want   []string
	}{
		{"Plain", "25", "Main St", nil, []string{"25"}},
		{"Suffix", "12/a", "Main St", nil, []string{"12"}},
		{"LetterSuffix", "7b", "Main St", nil, []string{"7"}},
		{"DashIsNotExpanded", "3-5", "Main St", nil, []string{"3", "5"}},
		{"DashWithSpaces", "3 - 5", "Main St", nil, []string{"3", "5"}},
		{"NotANumber", "abc", "Main St", nil, nil},
		{"AboveDefault", "1000", "Main St", nil, nil},
		{"Zero", "0", "Main St", nil, nil},
		{"CustomFilterAccepts", "11", "Filtered utca", filtered, []string{"11"}},
		{"CustomFilterRejects", "13", "Filtered utca", filtered, nil},
		{"OtherStreetUsesDefault", "13", "Main St", filtered, []string{"13"}},
		{"Duplicates", "4-4", "Main St", nil, []string{"4", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.street, tt.policy, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Diagnostics(t *testing.T) {
	var diag Diagnostics

	Normalize("1-x-1200-", "Main St", nil, &diag)

	assert.Equal(t, 1, diag.Kept)
	assert.Equal(t, 2, diag.NoDigits)
	assert.Equal(t, 1, diag.OutOfRange)
	assert.Equal(t, 3, diag.Dropped())
}

func TestNormalize_OverflowIsOutOfRange(t *testing.T) {
	var diag Diagnostics
	got := Normalize("99999999999999999999999-5", "A utca", nil, &diag)

	assert.Equal(t, []string{"5"}, got)
	assert.Equal(t, 0, diag.NoDigits)
	assert.Equal(t, 1, diag.OutOfRange)
}

func TestAccepted_RecordsNothing(t *testing.T) {
	before := testutil.ToFloat64(droppedTotal.WithLabelValues(ReasonNoDigits))

	got := Accepted("utca 3-x", "A utca", nil)

	assert.Empty(t, got)
	assert.Equal(t, []string{"3"}, Accepted("3-x", "A utca", nil))
	assert.Equal(t, before, testutil.ToFloat64(droppedTotal.WithLabelValues(ReasonNoDigits)))
}

func TestNormalize_Metrics(t *testing.T) {
	before := testutil.ToFloat64(droppedTotal.WithLabelValues(ReasonOutOfRange))

	Normalize("2000", "Main St", nil, nil)

	after := testutil.ToFloat64(droppedTotal.WithLabelValues(ReasonOutOfRange))
	assert.Equal(t, before+1, after)
}

func TestDiagnostics_Merge(t *testing.T) {
	d := Diagnostics{Kept: 1, NoDigits: 2}
	d.Merge(Diagnostics{Kept: 3, OutOfRange: 4})

	assert.Equal(t, Diagnostics{Kept: 4, NoDigits: 2, OutOfRange: 4}, d)

	var nilDiag *Diagnostics
	assert.Equal(t, 0, nilDiag.Dropped())
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"5", "3", "5", "10", "3"})

	assert.Equal(t, []string{"3", "5", "10"}, got)
	assert.Empty(t, Unique(nil))
}

func TestPolicy_For(t *testing.T) {
	custom := ranges.Set{ranges.New(1, 3)}
	p := Policy{"A utca": custom}

	assert.True(t, custom.Equal(p.For("A utca")))
	assert.True(t, ranges.Default().Equal(p.For("B utca")))
	assert.True(t, ranges.Default().Equal(Policy(nil).For("B utca")))
}
