package ids

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionIDs_UniqueUnderConcurrency(t *testing.T) {
	g, err := NewTransactionIDs(1)
	require.NoError(t, err)

	const n = 500
	var mu sync.Mutex
	seen := make(map[string]struct{}, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
	for id := range seen {
		assert.True(t, strings.HasPrefix(id, "TX-"))
		break
	}
}

func TestNewTransactionIDs_RejectsOutOfRangeNode(t *testing.T) {
	_, err := NewTransactionIDs(5000)
	assert.Error(t, err)
}
