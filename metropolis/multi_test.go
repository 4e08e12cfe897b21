// Package metropolis_test - multi-chain restarts.
package metropolis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdlabac/subcipher/metropolis"
)

func TestSearchParallel_SingleChainMatchesSearch(t *testing.T) {
	model := buildTestModel(t)
	ct := sampleText(t, 100)

	opts := metropolis.DefaultOptions()
	opts.Iterations = 800
	opts.Seed = 5
	opts.Chains = 1

	single, err := metropolis.Search(ct, model, opts)
	require.NoError(t, err)

	parallel, err := metropolis.SearchParallel(context.Background(), ct, model, opts)
	require.NoError(t, err)

	assert.Equal(t, single.Key, parallel.Key)
	assert.Equal(t, single.History, parallel.History)
}

func TestSearchParallel_ChainsFloorToOne(t *testing.T) {
	model := buildTestModel(t)
	ct := sampleText(t, 80)

	opts := metropolis.DefaultOptions()
	opts.Iterations = 300
	opts.Seed = 5
	opts.Chains = 0

	res, err := metropolis.SearchParallel(context.Background(), ct, model, opts)
	require.NoError(t, err)
	assert.Len(t, res.History, opts.Iterations+1)
}

func TestSearchParallel_BestOfChainsDominatesFirstChain(t *testing.T) {
	model := buildTestModel(t)
	ct := sampleText(t, 150)

	opts := metropolis.DefaultOptions()
	opts.Iterations = 1000
	opts.Seed = 9

	first, err := metropolis.Search(ct, model, opts)
	require.NoError(t, err)

	opts.Chains = 4
	best, err := metropolis.SearchParallel(context.Background(), ct, model, opts)
	require.NoError(t, err)

	// Chain 0 reuses the base seed verbatim, so the ensemble winner can
	// never be worse than the single run.
	assert.GreaterOrEqual(t, best.BestFitness, first.BestFitness)
}

func TestSearchParallel_Deterministic(t *testing.T) {
	model := buildTestModel(t)
	ct := sampleText(t, 100)

	opts := metropolis.DefaultOptions()
	opts.Iterations = 500
	opts.Seed = 13
	opts.Chains = 3

	a, err := metropolis.SearchParallel(context.Background(), ct, model, opts)
	require.NoError(t, err)
	b, err := metropolis.SearchParallel(context.Background(), ct, model, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Key, b.Key)
	assert.Equal(t, a.BestFitness, b.BestFitness)
}

func TestSearchParallel_CancelledContext(t *testing.T) {
	model := buildTestModel(t)
	ct := sampleText(t, 80)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := metropolis.DefaultOptions()
	opts.Iterations = 100
	opts.Chains = 2

	_, err := metropolis.SearchParallel(ctx, ct, model, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchParallel_BoundaryValidation(t *testing.T) {
	ct := sampleText(t, 40)

	_, err := metropolis.SearchParallel(context.Background(), ct, nil, metropolis.DefaultOptions())
	assert.ErrorIs(t, err, metropolis.ErrNilModel)
}
