package wordpool

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesPool(t *testing.T) {
	pool, err := New([]string{" Tree ", "cloud", "TREE", "", "  ", "rain", "cloud"})
	require.NoError(t, err)

	assert.Equal(t, []string{"tree", "cloud", "rain"}, pool.Words())
	assert.Equal(t, 3, pool.Len())
}

func TestNewRejectsEmptyPool(t *testing.T) {
	_, err := New([]string{"", "   "})
	assert.True(t, errors.Is(err, entity.ErrEmptyPool))
}

func TestSampleReturnsDistinctPoolMembers(t *testing.T) {
	pool, err := New(DefaultWords())
	require.NoError(t, err)

	members := make(map[string]bool, pool.Len())
	for _, w := range pool.Words() {
		members[w] = true
	}

	for round := 0; round < 200; round++ {
		words, err := pool.Sample(20)
		require.NoError(t, err)
		require.Len(t, words, 20)

		seen := make(map[string]bool, len(words))
		for _, w := range words {
			assert.True(t, members[w], "word %q is not in the pool", w)
			assert.False(t, seen[w], "word %q repeated in one round", w)
			seen[w] = true
		}
	}
}

func TestSampleWholePool(t *testing.T) {
	pool, err := New([]string{"a", "b", "c"})
	require.NoError(t, err)

	words, err := pool.Sample(3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, words)

	empty, err := pool.Sample(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSampleErrors(t *testing.T) {
	pool, err := New([]string{"a", "b"})
	require.NoError(t, err)

	_, err = pool.Sample(3)
	assert.True(t, errors.Is(err, entity.ErrPoolTooSmall))

	_, err = pool.Sample(-1)
	assert.True(t, errors.Is(err, entity.ErrInvalidRequest))
}

func TestSampleIsDeterministicWithFixedSource(t *testing.T) {
	first, err := New(DefaultWords(), WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	second, err := New(DefaultWords(), WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	a, err := first.Sample(20)
	require.NoError(t, err)
	b, err := second.Sample(20)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleDoesNotMutatePool(t *testing.T) {
	pool, err := New(DefaultWords())
	require.NoError(t, err)
	before := pool.Words()

	_, err = pool.Sample(20)
	require.NoError(t, err)
	assert.Equal(t, before, pool.Words())
}

func TestSampleConcurrentUse(t *testing.T) {
	pool, err := New(DefaultWords())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				words, err := pool.Sample(20)
				if assert.NoError(t, err) {
					assert.Len(t, words, 20)
				}
			}
		}()
	}
	wg.Wait()
}

func TestDefaultWordsLargeEnough(t *testing.T) {
	pool, err := New(DefaultWords())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pool.Len(), 20)
}
