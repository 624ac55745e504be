package sdk

import "sync"

// Storage keys for the two durable credentials. These are the only keys
// this package ever persists.
const (
	StorageKeyAccessToken  = "token"
	StorageKeyRefreshToken = "refresh_token"
)

// Storage is the injected persistence capability for credentials. A
// durable implementation lives in internal/credstore; MemoryStorage backs
// tests and the degraded no-persistence mode.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear(key string) error
}

// MemoryStorage is a process-local Storage. Safe for concurrent use.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Clear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// CredentialStore holds the access/refresh token pair on top of a Storage.
// The pair is swapped and cleared atomically: readers never observe one
// half of an old pair alongside one half of a new one. When the backing
// Storage starts failing (disk gone, quota), the store keeps serving the
// in-memory copy and silently stops persisting.
type CredentialStore struct {
	mu      sync.Mutex
	access  string
	refresh string
	loaded  bool
	storage Storage
}

// NewCredentialStore wraps storage. A nil storage degrades to memory-only.
func NewCredentialStore(storage Storage) *CredentialStore {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &CredentialStore{storage: storage}
}

func (c *CredentialStore) load() {
	if c.loaded {
		return
	}
	if v, ok := c.storage.Get(StorageKeyAccessToken); ok {
		c.access = v
	}
	if v, ok := c.storage.Get(StorageKeyRefreshToken); ok {
		c.refresh = v
	}
	c.loaded = true
}

// AccessToken returns the current access credential, if any.
func (c *CredentialStore) AccessToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.access, c.access != ""
}

// RefreshToken returns the current refresh credential, if any.
func (c *CredentialStore) RefreshToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.refresh, c.refresh != ""
}

// Pair returns both credentials under one lock, so callers can never see
// a half-swapped pair.
func (c *CredentialStore) Pair() (access, refresh string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.access, c.refresh, c.access != "" && c.refresh != ""
}

// SetPair stores both credentials as one atomic swap.
func (c *CredentialStore) SetPair(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.access = access
	c.refresh = refresh
	c.loaded = true
	// Persistence is best effort: a failing Storage must not break the
	// session, it only costs durability across restarts.
	_ = c.storage.Set(StorageKeyAccessToken, access)
	_ = c.storage.Set(StorageKeyRefreshToken, refresh)
}

// ClearPair removes both credentials. Idempotent.
func (c *CredentialStore) ClearPair() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.access = ""
	c.refresh = ""
	c.loaded = true
	_ = c.storage.Clear(StorageKeyAccessToken)
	_ = c.storage.Clear(StorageKeyRefreshToken)
}
