package keyhash

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher for key hashing.
//
// Register one or more named [Hasher] implementations, nominate a default
// driver, and then call [Manager.Key] for all key derivation.
//
// All Manager methods are safe for concurrent use by multiple goroutines.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any key is
// derived through the Manager.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the four built-in drivers
// registered using their default options. The default driver is
// [DriverBlake2b].
func NewDefaultManager() (*Manager, error) {
	b2, err := NewBlake2bHasher(DefaultBlake2bOptions())
	if err != nil {
		return nil, fmt.Errorf("keyhash: failed to create default blake2b hasher: %w", err)
	}
	s3, err := NewSHA3Hasher(DefaultSHA3Options())
	if err != nil {
		return nil, fmt.Errorf("keyhash: failed to create default sha3 hasher: %w", err)
	}

	m := NewManager(DriverBlake2b)
	_ = m.RegisterDriver(DriverPlain, PlainHasher{})
	_ = m.RegisterDriver(DriverBlake2b, b2)
	_ = m.RegisterDriver(DriverSHA3, s3)
	_ = m.RegisterDriver(DriverXXHash, XXHasher{})
	return m, nil
}

// RegisterDriver adds or replaces a named hasher.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or an error wrapping
// [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Key]. The named
// driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Key derives a key for args with the default driver.
func (m *Manager) Key(args ...any) (string, error) {
	m.mu.RLock()
	h, ok := m.drivers[m.def]
	def := m.def
	m.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, def)
	}
	return h.Sum(Canonical(args...)), nil
}

// KeyWith derives a key for args with the named driver.
func (m *Manager) KeyWith(name DriverName, args ...any) (string, error) {
	h, err := m.Driver(name)
	if err != nil {
		return "", err
	}
	return h.Sum(Canonical(args...)), nil
}

var defaultManager = sync.OnceValues(NewDefaultManager)

// Default returns the shared Manager used by [Key].
func Default() *Manager {
	m, err := defaultManager()
	if err != nil {
		// The built-in options are constant and valid.
		panic(err)
	}
	return m
}

// Key derives a key for args with the shared default Manager.
func Key(args ...any) string {
	k, err := Default().Key(args...)
	if err != nil {
		panic(err)
	}
	return k
}
