package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/cache"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
)

var key = domain.CacheKey{Scope: "fs:/project/styles", Name: "main.scss"}

func TestMemory_RetrieveMissingKey(t *testing.T) {
	m := cache.NewMemory()

	root, ok, err := m.Retrieve(key, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, root)
}

func TestMemory_FingerprintMustMatch(t *testing.T) {
	m := cache.NewMemory()
	stored := tree.NewRoot()
	require.NoError(t, m.Store(key, "a", stored))

	got, ok, err := m.Retrieve(key, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, stored, got)

	got, ok, err = m.Retrieve(key, "b")
	require.NoError(t, err)
	assert.False(t, ok, "a different fingerprint is a miss")
	assert.Nil(t, got)
}

func TestMemory_StoreOverwrites(t *testing.T) {
	m := cache.NewMemory()
	first, second := tree.NewRoot(), tree.NewRoot()
	require.NoError(t, m.Store(key, "a", first))
	require.NoError(t, m.Store(key, "b", second))

	_, ok, _ := m.Retrieve(key, "a")
	assert.False(t, ok)

	got, ok, _ := m.Retrieve(key, "b")
	assert.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := cache.NewMemory()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := domain.CacheKey{Scope: "fs:/p", Name: fmt.Sprintf("f%d.scss", i%4)}
			fp := domain.Fingerprint(fmt.Sprintf("%d", i))
			_ = m.Store(k, fp, tree.NewRoot())
			_, _, _ = m.Retrieve(k, fp)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, m.Len())
}
