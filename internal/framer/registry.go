package framer

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/danmuck/sersrcgen/internal/protocol"
)

var (
	ErrFramerExists = errors.New("framer already registered")
	ErrFramerNil    = errors.New("framer is nil")
)

// Registry stores framers by protocol id.
type Registry struct {
	mu    sync.RWMutex
	items map[protocol.ID]Framer
}

// NewRegistry creates an empty framer registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[protocol.ID]Framer)}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process registry holding the UART framer and the
// reserved SPI, I2C and CAN stubs.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, f := range []Framer{
			UART{},
			Reserved{ID: protocol.SPI},
			Reserved{ID: protocol.I2C},
			Reserved{ID: protocol.CAN},
		} {
			if err := r.Register(f); err != nil {
				panic(err)
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds a framer to the registry.
func (r *Registry) Register(f Framer) error {
	if f == nil {
		return ErrFramerNil
	}
	id := f.Protocol()
	if !id.Known() {
		return fmt.Errorf("%w: %q", protocol.ErrInvalidProtocol, byte(id))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; ok {
		return fmt.Errorf("%w: %s", ErrFramerExists, id)
	}
	r.items[id] = f
	return nil
}

// Lookup returns the framer for id.
func (r *Registry) Lookup(id protocol.ID) (Framer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: no framer for %s", protocol.ErrInvalidProtocol, id)
	}
	return f, nil
}

// Protocols returns registered ids in deterministic order.
func (r *Registry) Protocols() []protocol.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]protocol.ID, 0, len(r.items))
	for id := range r.items {
		list = append(list, id)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})
	return list
}
