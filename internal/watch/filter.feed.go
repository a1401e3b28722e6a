package watch

import (
	"sync"

	"github.com/joshuarp/flight-admin/internal/domain"
)

// filterFeed turns config reloads into listing filters. Only the newest
// filter is kept when the listing falls behind.
type filterFeed struct {
	mu      sync.Mutex
	raw     domain.FlightFilter
	applied domain.FlightFilter
	ch      chan domain.FlightFilter
}

func newFilterFeed(initial domain.FlightFilter) *filterFeed {
	f := &filterFeed{
		raw:     initial,
		applied: initial,
		ch:      make(chan domain.FlightFilter, 1),
	}
	f.ch <- initial
	return f
}

// push records the filter read from config. A reload that changes the size or
// code starts over from the first page, whatever page the file names.
func (f *filterFeed) push(raw domain.FlightFilter) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if raw == f.raw {
		return
	}
	f.applied = f.raw.Apply(raw)
	f.raw = raw

	for {
		select {
		case f.ch <- f.applied:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

func (f *filterFeed) current() domain.FlightFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applied
}

func (f *filterFeed) updates() <-chan domain.FlightFilter {
	return f.ch
}
