package config

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOnce_SingleExecution(t *testing.T) {
	var r resolveOnce
	var calls atomic.Int32

	load := func() (*Config, error) {
		calls.Add(1)
		return &Config{SubstrateWSURL: "wss://node.example.com"}, nil
	}

	first, err := r.get(load)
	require.NoError(t, err)
	second, err := r.get(load)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, calls.Load())
}

func TestResolveOnce_ConcurrentFirstAccess(t *testing.T) {
	var r resolveOnce
	var calls atomic.Int32

	load := func() (*Config, error) {
		calls.Add(1)
		return &Config{SubstrateWSURL: "wss://node.example.com"}, nil
	}

	const workers = 32
	results := make([]*Config, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = r.get(load)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for i := range workers {
		assert.Same(t, results[0], results[i])
	}
}

func TestResolveOnce_ErrorSticks(t *testing.T) {
	var r resolveOnce
	var calls atomic.Int32
	wantErr := errors.New("no endpoint")

	load := func() (*Config, error) {
		calls.Add(1)
		return nil, wantErr
	}

	_, err := r.get(load)
	require.ErrorIs(t, err, wantErr)

	// A failed resolution is not retried
	_, err = r.get(load)
	require.ErrorIs(t, err, wantErr)
	assert.EqualValues(t, 1, calls.Load())
}
