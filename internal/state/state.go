// Package state provides thread-safe session state for the viewer.
package state

import (
	"sync"
	"time"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
	"github.com/EthanLiu015/SkyTrackr/internal/catalog"
	"github.com/EthanLiu015/SkyTrackr/internal/clock"
	"github.com/EthanLiu015/SkyTrackr/internal/locate"
)

// BannerLevel classifies a transient status banner.
type BannerLevel int

const (
	BannerInfo BannerLevel = iota
	BannerWarn
	BannerError
)

// Banner is a transient message shown over the sky view, such as the
// outcome of a search. It disappears after TTL.
type Banner struct {
	Message string
	Level   BannerLevel
	SetAt   time.Time
	TTL     time.Duration
}

// ExpiredAt reports whether the banner should no longer be shown at t.
func (b Banner) ExpiredAt(t time.Time) bool {
	if b.Message == "" {
		return true
	}
	return t.After(b.SetAt.Add(b.TTL))
}

// DefaultBannerTTL is how long search results stay on screen.
const DefaultBannerTTL = 4 * time.Second

// Manager holds all shared session state with thread-safe access.
// The catalog is set once at startup and never re-fetched; the observer
// and focus target change in response to user actions.
type Manager struct {
	mu sync.RWMutex

	observer astro.Observer
	catalog  catalog.Snapshot
	clock    *clock.Clock

	focus    *locate.Aim
	banner   Banner
	lastErr  error
	searches int
}

// NewManager creates a session manager around the given virtual clock.
func NewManager(obs astro.Observer, cat catalog.Snapshot, clk *clock.Clock) *Manager {
	return &Manager{
		observer: obs,
		catalog:  cat,
		clock:    clk,
	}
}

// Clock returns the session's virtual clock. The clock does its own
// locking, so it is shared rather than snapshotted.
func (m *Manager) Clock() *clock.Clock {
	return m.clock
}

// Observer returns the current observer position.
func (m *Manager) Observer() astro.Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.observer
}

// SetObserver replaces the observer position.
func (m *Manager) SetObserver(obs astro.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observer = obs
}

// Catalog returns the loaded star catalog.
func (m *Manager) Catalog() catalog.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// LastError returns the most recent search error, if any.
func (m *Manager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Search resolves a name against the catalog and planets at the current
// simulated time, records the outcome as the focus target or a banner,
// and returns the result.
func (m *Manager) Search(query string) (locate.Aim, error) {
	obs := m.Observer()
	cat := m.Catalog()
	now := m.clock.Sample()

	aim, err := locate.Locate(query, cat.Stars, obs, now)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches++
	m.lastErr = err
	if err != nil {
		m.focus = nil
		m.banner = Banner{
			Message: err.Error(),
			Level:   bannerLevelFor(err),
			SetAt:   time.Now(),
			TTL:     DefaultBannerTTL,
		}
		return locate.Aim{}, err
	}

	m.focus = &aim
	m.banner = Banner{}
	return aim, nil
}

func bannerLevelFor(err error) BannerLevel {
	switch err.(type) {
	case *locate.NotFoundError:
		return BannerError
	case *locate.BelowHorizonError:
		return BannerWarn
	default:
		return BannerError
	}
}

// ClearFocus drops the current focus target.
func (m *Manager) ClearFocus() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focus = nil
}

// SetBanner shows a transient message.
func (m *Manager) SetBanner(msg string, level BannerLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banner = Banner{Message: msg, Level: level, SetAt: time.Now(), TTL: DefaultBannerTTL}
}

// Snapshot is a consistent view of the session for one render frame.
type Snapshot struct {
	Observer astro.Observer
	Catalog  catalog.Snapshot
	SimTime  time.Time
	Rate     float64
	Paused   bool
	Focus    *locate.Aim
	Banner   Banner
	Searches int
}

// Snapshot returns a consistent snapshot of the session. The banner is
// omitted once expired.
func (m *Manager) Snapshot() Snapshot {
	clkState := m.clock.Snapshot()
	simTime := m.clock.Sample()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var focus *locate.Aim
	if m.focus != nil {
		aim := *m.focus
		focus = &aim
	}

	banner := m.banner
	if banner.ExpiredAt(time.Now()) {
		banner = Banner{}
	}

	return Snapshot{
		Observer: m.observer,
		Catalog:  m.catalog,
		SimTime:  simTime,
		Rate:     clkState.Rate,
		Paused:   clkState.Paused,
		Focus:    focus,
		Banner:   banner,
		Searches: m.searches,
	}
}
