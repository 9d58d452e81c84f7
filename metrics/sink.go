// Package metrics collects interaction measurements as (name, value) pairs.
// Sinks are passed explicitly to the components that record into them; there
// is no ambient global collector.
package metrics

import (
	"cmp"
	"slices"
	"sync"
)

// DefaultMaxSeries caps the number of distinct metric names a Buffer tracks.
const DefaultMaxSeries = 256

// Sink accepts interaction measurements.
type Sink interface {
	Record(name string, value float64)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Record(string, float64) {}

// Summary is one aggregated metric series.
type Summary struct {
	Name  string  `json:"name"`
	Count uint64  `json:"count"`
	Sum   float64 `json:"sum"`
}

// Buffer aggregates recorded values per name. Safe for concurrent use.
// Once the series cap is reached, measurements with new names are dropped
// so a misbehaving caller cannot grow the map without bound.
type Buffer struct {
	mu     sync.Mutex
	series map[string]*Summary

	maxSeries int // exposed for testing
}

func NewBuffer() *Buffer {
	return &Buffer{
		series:    make(map[string]*Summary),
		maxSeries: DefaultMaxSeries,
	}
}

func (b *Buffer) Record(name string, value float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.series[name]
	if !ok {
		if len(b.series) >= b.maxSeries {
			return
		}
		s = &Summary{Name: name}
		b.series[name] = s
	}
	s.Count++
	s.Sum += value
}

// Summaries returns all series sorted by name for stable display order.
func (b *Buffer) Summaries() []Summary {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Summary, 0, len(b.series))
	for _, s := range b.series {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Summary) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Total returns the combined count across all series.
func (b *Buffer) Total() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	var n uint64
	for _, s := range b.series {
		n += s.Count
	}
	return n
}
