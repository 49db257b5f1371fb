package resolve

import (
	"sync"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
)

// Memo is the concrete dtype.MemoStore: the match-memoization table of
// spec §5. It is owned by one Context and discarded with it, which is
// this core's answer to the "WeakMap<Context, ...>" shape described
// there — Go has no weak maps, but a Context-scoped map needs none,
// since nothing outlives the Context that owns it.
type Memo struct {
	mu    sync.Mutex
	store map[string]dtype.Result
}

func NewMemo() *Memo { return &Memo{store: make(map[string]dtype.Result)} }

func (m *Memo) Get(key string) (dtype.Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store[key]
	return r, ok
}

func (m *Memo) Set(key string, result dtype.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = result
}
