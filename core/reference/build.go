package reference

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Where a cache came from.
const (
	OriginMemory  = "memory"
	OriginSidecar = "sidecar"
	OriginScan    = "scan"
)

var loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reference_cache_loads_total",
	Help: "Reference cache loads by origin (memory, sidecar, scan)",
}, []string{"origin"})

// Build returns the cache of the reference table at source.
//
// A side-car next to the table is used when it passes the validity check v.
// Otherwise the table is scanned and the side-car is rewritten. The
// side-car is only written after a complete, successful scan.
func Build(source string, v Validity) (Cache, error) {
	cache, _, err := build(source, v)
	return cache, err
}

func build(source string, v Validity) (Cache, string, error) {
	token, err := Token(source, v)
	if err != nil {
		return nil, "", err
	}

	path := SidecarPath(source)
	cache, err := readSidecar(path, token, v)
	if err != nil {
		return nil, "", err
	}
	if cache != nil {
		loadsTotal.WithLabelValues(OriginSidecar).Inc()
		return cache, OriginSidecar, nil
	}

	cache, err = ParseFile(source)
	if err != nil {
		return nil, "", err
	}
	if err := writeSidecar(path, token, cache); err != nil {
		return nil, "", err
	}
	loadsTotal.WithLabelValues(OriginScan).Inc()
	return cache, OriginScan, nil
}
