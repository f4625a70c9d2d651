package schema_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProber records probe calls per feature and answers from a fixed
// status table.
type countingProber struct {
	mu     sync.Mutex
	calls  map[string]int
	status map[string]int
	err    error
}

func (p *countingProber) ProbeSchemaVersion(_ context.Context, feature string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[feature]++
	if p.err != nil {
		return 0, p.err
	}
	return p.status[feature], nil
}

func (p *countingProber) callCount(feature string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[feature]
}

func TestEnsure_CompatibleProbesOnce(t *testing.T) {
	prober := &countingProber{}
	gate := schema.NewGate(prober, []string{"Membership", "Role"})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, gate.Ensure(ctx))
	}

	assert.Equal(t, 1, prober.callCount("Membership"))
	assert.Equal(t, 1, prober.callCount("Role"))
}

func TestEnsure_IncompatibleIsTerminal(t *testing.T) {
	prober := &countingProber{status: map[string]int{"Role": 5}}
	gate := schema.NewGate(prober, []string{"Membership", "Role"})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := gate.Ensure(ctx)
		assert.ErrorIs(t, err, autherror.ErrSchemaIncompatible)
	}

	// The failed probe set ran once; subsequent calls fail fast without
	// contacting the store.
	assert.Equal(t, 1, prober.callCount("Membership"))
	assert.Equal(t, 1, prober.callCount("Role"))
}

func TestEnsure_TransportErrorAllowsRetry(t *testing.T) {
	prober := &countingProber{err: errors.New("connection refused")}
	gate := schema.NewGate(prober, []string{"Membership"})
	ctx := context.Background()

	err := gate.Ensure(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, autherror.ErrSchemaIncompatible)

	// The gate stays Unchecked: a second call probes again and may succeed.
	prober.err = nil
	require.NoError(t, gate.Ensure(ctx))
	assert.Equal(t, 2, prober.callCount("Membership"))
}

func TestEnsure_ConcurrentFirstAccess(t *testing.T) {
	prober := &countingProber{status: map[string]int{"Membership": 1}}
	gate := schema.NewGate(prober, []string{"Membership", "Role"})

	const goroutines = 100
	var failures atomic.Int32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			if err := gate.Ensure(context.Background()); errors.Is(err, autherror.ErrSchemaIncompatible) {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(goroutines), failures.Load())
	// Exactly one probe despite 100 concurrent first callers. The Role
	// feature is never probed because Membership already failed.
	assert.Equal(t, 1, prober.callCount("Membership"))
	assert.Equal(t, 0, prober.callCount("Role"))
}

func TestEnsure_ConcurrentCompatible(t *testing.T) {
	prober := &countingProber{}
	gate := schema.NewGate(prober, []string{"Membership", "Role"})

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, gate.Ensure(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, prober.callCount("Membership"))
	assert.Equal(t, 1, prober.callCount("Role"))
}
