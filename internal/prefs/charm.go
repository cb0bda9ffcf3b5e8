// ABOUTME: Charm KV backend for the preference store.
// ABOUTME: Thread-safe global initialization; read-only fallback when locked.
package prefs

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

const dbName = "holdon"

var (
	globalStore *Store
	storeOnce   sync.Once
	storeErr    error
)

// charmKV adapts the charm kv client to the KV interface, refusing writes
// when another process holds the database lock.
type charmKV struct {
	kv *kv.KV
}

func (c *charmKV) Get(key []byte) ([]byte, error) {
	return c.kv.Get(key)
}

func (c *charmKV) Set(key, value []byte) error {
	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: preferences database is locked by another process")
	}
	return c.kv.Set(key, value)
}

func (c *charmKV) Close() error {
	return c.kv.Close()
}

// OpenCharm initializes the global charm-backed preference store. Safe to
// call multiple times; subsequent calls return the first result.
func OpenCharm() (*Store, error) {
	storeOnce.Do(func() {
		db, err := kv.OpenWithDefaultsFallback(dbName)
		if err != nil {
			storeErr = fmt.Errorf("open preferences store: %w", err)
			return
		}
		globalStore = NewStore(&charmKV{kv: db})
	})
	return globalStore, storeErr
}
