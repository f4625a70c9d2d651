// Package schema holds the per-provider schema compatibility gate. Every
// data operation passes through the gate before touching the backing store.
package schema

import (
	"context"
	"sync"
	"sync/atomic"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
)

const (
	stateUnchecked    int32 = 0
	stateIncompatible int32 = -1
	stateCompatible   int32 = 1
)

// Gate is a tri-state compatibility check that runs at most one probe set per
// provider instance. Once Incompatible it never re-probes and never recovers.
type Gate struct {
	mu       sync.Mutex
	state    atomic.Int32
	prober   domain.SchemaProber
	features []string
}

// NewGate builds a Gate that probes the given feature names on first use.
func NewGate(prober domain.SchemaProber, features []string) *Gate {
	return &Gate{prober: prober, features: features}
}

// Ensure passes when the backing-store schema is compatible. Concurrent first
// callers serialize on the lock so the probe set runs at most once; once a
// verdict is cached, later callers return on the lock-free fast path. A
// transport failure leaves the gate Unchecked so a later call may retry.
func (g *Gate) Ensure(ctx context.Context) error {
	switch g.state.Load() {
	case stateCompatible:
		return nil
	case stateIncompatible:
		return autherror.ErrSchemaIncompatible
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Re-check under the lock: another caller may have probed already.
	switch g.state.Load() {
	case stateCompatible:
		return nil
	case stateIncompatible:
		return autherror.ErrSchemaIncompatible
	}

	for _, feature := range g.features {
		code, err := g.prober.ProbeSchemaVersion(ctx, feature)
		if err != nil {
			return err
		}
		if code != 0 {
			g.state.Store(stateIncompatible)
			return autherror.ErrSchemaIncompatible
		}
	}
	g.state.Store(stateCompatible)

	return nil
}
