package student

import (
	"context"
	"sync"

	"github.com/coachly/mobile/core"
)

// Roster fetches the student list from the backend.
type Roster interface {
	Students(ctx context.Context) ([]Student, error)
}

// Directory holds the roster snapshot behind the management screen. The
// snapshot is replaced wholesale on every refresh and never mutated.
type Directory struct {
	roster Roster
	logger core.Logger

	mu       sync.RWMutex
	snapshot []Student
}

func NewDirectory(roster Roster, logger core.Logger) *Directory {
	return &Directory{roster: roster, logger: logger}
}

// Refresh re-fetches the roster. On failure the previous snapshot is kept.
func (d *Directory) Refresh(ctx context.Context) error {
	list, err := d.roster.Students(ctx)
	if err != nil {
		return err
	}
	// the caller may be gone; leave shared state alone
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	d.snapshot = list
	d.mu.Unlock()

	d.logger.Debug("roster refreshed", "students", len(list))
	return nil
}

// Search filters the current snapshot by name or email.
func (d *Directory) Search(query string) []Student {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Filter(d.snapshot, query)
}

// Len returns the size of the unfiltered roster, for the screen header.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.snapshot)
}
