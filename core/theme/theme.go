package theme

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/coachly/mobile/core"
	"github.com/coachly/mobile/storage/kvstore"
)

const (
	dark  = "dark"
	light = "light"
)

// Manager holds the dark/light preference, persisted independently of the
// session under its own device-store key. Light is the default.
type Manager struct {
	kv     kvstore.Store
	logger core.Logger

	mu       sync.RWMutex
	darkMode bool
}

func NewManager(kv kvstore.Store, logger core.Logger) *Manager {
	return &Manager{kv: kv, logger: logger}
}

// Load reads the saved preference at process start. A missing key or a
// storage failure keeps the default; failures are logged, not raised.
func (m *Manager) Load(ctx context.Context) {
	val, err := m.kv.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			m.logger.Warn("failed to load theme preference", "error", err)
		}
		return
	}

	m.mu.Lock()
	m.darkMode = val == dark
	m.mu.Unlock()
}

// Toggle flips the preference and persists it. The in-memory flip sticks
// even when persisting fails; the failure is logged. Returns the new value.
func (m *Manager) Toggle(ctx context.Context) bool {
	m.mu.Lock()
	m.darkMode = !m.darkMode
	darkMode := m.darkMode
	m.mu.Unlock()

	val := light
	if darkMode {
		val = dark
	}
	if err := m.kv.Set(ctx, kvstore.KeyTheme, val); err != nil {
		m.logger.Warn("failed to save theme preference", "error", err)
	}
	return darkMode
}

func (m *Manager) IsDarkMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.darkMode
}
