package normalize

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reasons a token can be dropped during normalization.
const (
	ReasonNoDigits   = "no_digits"
	ReasonOutOfRange = "out_of_range"
)

var droppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "housenumber_normalize_dropped_total",
	Help: "House-number tokens dropped during normalization, by reason",
}, []string{"reason"})

var keptTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "housenumber_normalize_kept_total",
	Help: "House-number tokens accepted during normalization",
})

// Diagnostics counts what normalization kept and dropped. Dropping a token
// is not an error, but the counts let callers report how much input was
// ignored.
type Diagnostics struct {
	// Kept is the number of accepted tokens.
	Kept int `json:"kept"`
	// NoDigits counts tokens without a leading digit.
	NoDigits int `json:"no_digits"`
	// OutOfRange counts numbers rejected by the street policy.
	OutOfRange int `json:"out_of_range"`
}

// Dropped returns the total number of dropped tokens.
func (d *Diagnostics) Dropped() int {
	if d == nil {
		return 0
	}
	return d.NoDigits + d.OutOfRange
}

// Merge adds the counts of other to d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Kept += other.Kept
	d.NoDigits += other.NoDigits
	d.OutOfRange += other.OutOfRange
}

func (d *Diagnostics) drop(reason string) {
	droppedTotal.WithLabelValues(reason).Inc()
	if d == nil {
		return
	}
	switch reason {
	case ReasonNoDigits:
		d.NoDigits++
	case ReasonOutOfRange:
		d.OutOfRange++
	}
}

func (d *Diagnostics) keep(n int) {
	keptTotal.Add(float64(n))
	if d == nil {
		return
	}
	d.Kept += n
}
