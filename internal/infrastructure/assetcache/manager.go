// Package assetcache keeps a versioned cache of the application-shell
// assets so the app can load without connectivity. One version is active
// at a time; installs stage a complete new version (all-or-nothing) which
// either activates immediately or waits for a skip-waiting instruction.
// The manager talks to the foreground sessions purely by message passing
// over subscriber channels.
package assetcache

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
)

// Notification is the message broadcast to subscribers when a new asset
// version takes over.
type Notification struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

// NotifyReload asks controlled clients to reload onto the new version.
const NotifyReload = "RELOAD_PAGE"

type asset struct {
	data        []byte
	contentType string
}

// Status is the externally visible manager state.
type Status struct {
	State          enum.CacheState `json:"state"`
	ActiveVersion  string          `json:"active_version,omitempty"`
	WaitingVersion string          `json:"waiting_version,omitempty"`
	CachedVersions []string        `json:"cached_versions"`
}

// Manager owns the versioned caches. All methods are safe for concurrent
// use; the subscriber channels are the only way state changes leave the
// manager.
type Manager struct {
	mu       sync.Mutex
	fetcher  Fetcher
	manifest []string

	caches  map[string]map[string]asset
	current string // active version tag, "" before first install
	waiting string // installed version waiting for activation

	state enum.CacheState
	subs  map[uuid.UUID]chan Notification
}

// NewManager creates a cache manager over a fixed shell manifest.
func NewManager(fetcher Fetcher, manifest []string) *Manager {
	return &Manager{
		fetcher:  fetcher,
		manifest: append([]string(nil), manifest...),
		caches:   make(map[string]map[string]asset),
		state:    enum.CacheStateIdle,
		subs:     make(map[uuid.UUID]chan Notification),
	}
}

// Install populates the cache named by version with every manifest asset.
// Any fetch failure discards the staged cache entirely; the previously
// active version stays current. When no version is active yet the new one
// activates immediately, otherwise it parks in Waiting.
func (m *Manager) Install(ctx context.Context, version string) error {
	if version == "" {
		return fmt.Errorf("assetcache: empty version tag")
	}

	m.mu.Lock()
	if m.state == enum.CacheStateInstalling {
		m.mu.Unlock()
		return fmt.Errorf("assetcache: install already in progress")
	}
	prior := m.state
	m.state = enum.CacheStateInstalling
	manifest := m.manifest
	m.mu.Unlock()

	// Fetches run outside the lock; staged is private until complete.
	staged := make(map[string]asset, len(manifest))
	for _, p := range manifest {
		data, ct, err := m.fetcher.Fetch(ctx, p)
		if err != nil {
			m.mu.Lock()
			m.state = prior
			m.mu.Unlock()
			return fmt.Errorf("assetcache: install of %s failed: %w", version, err)
		}
		staged[p] = asset{data: data, contentType: ct}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.caches[version] = staged
	if m.current == "" {
		m.activateLocked(version)
		return nil
	}
	if version == m.current {
		// Reinstall of the active version refreshes it in place.
		m.state = enum.CacheStateActive
		return nil
	}
	m.waiting = version
	m.state = enum.CacheStateWaiting
	return nil
}

// SkipWaiting activates a waiting version immediately and broadcasts a
// reload notification to every subscriber. It reports whether a switch
// happened.
func (m *Manager) SkipWaiting() bool {
	m.mu.Lock()
	if m.waiting == "" {
		m.mu.Unlock()
		return false
	}
	version := m.waiting
	m.activateLocked(version)
	subs := make([]chan Notification, 0, len(m.subs))
	for _, ch := range m.subs {
		subs = append(subs, ch)
	}
	m.mu.Unlock()

	n := Notification{Type: NotifyReload, Version: version}
	for _, ch := range subs {
		select {
		case ch <- n:
		default: // slow subscriber, drop rather than block
		}
	}
	return true
}

// activateLocked claims the given version: every other cached version is
// deleted and requests are served from the new one immediately.
func (m *Manager) activateLocked(version string) {
	m.state = enum.CacheStateActivating
	for name := range m.caches {
		if name != version {
			delete(m.caches, name)
		}
	}
	m.current = version
	m.waiting = ""
	m.state = enum.CacheStateActive
}

// Lookup returns the cached entry for a request path from the active
// version. Misses pass through to the network; lookups never write back.
func (m *Manager) Lookup(path string) (data []byte, contentType string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == "" {
		return nil, "", false
	}
	a, ok := m.caches[m.current][path]
	if !ok {
		return nil, "", false
	}
	return a.data, a.contentType, true
}

// Subscribe registers a notification channel. The caller must Unsubscribe
// when done.
func (m *Manager) Subscribe() (uuid.UUID, <-chan Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New()
	ch := make(chan Notification, 4)
	m.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber.
func (m *Manager) Unsubscribe(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, id)
}

// Status reports the current lifecycle state and cached version names.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	versions := make([]string, 0, len(m.caches))
	for name := range m.caches {
		versions = append(versions, name)
	}
	return Status{
		State:          m.state,
		ActiveVersion:  m.current,
		WaitingVersion: m.waiting,
		CachedVersions: versions,
	}
}
