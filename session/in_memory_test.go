package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCreatesLazily(t *testing.T) {
	store := NewInMemoryStore(5)
	assert.Zero(t, store.Len())

	conv := store.Get("s1")
	assert.NotNil(t, conv)
	assert.Equal(t, 1, store.Len())

	// Same session returns the same conversation instance.
	assert.Same(t, conv, store.Get("s1"))
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewInMemoryStore(5)
	store.Get("a").AppendUser("bonjour")
	store.Get("b").AppendUser("salut")
	store.Get("b").AppendUser("ça va ?")

	assert.Equal(t, 1, store.Get("a").Len())
	assert.Equal(t, 2, store.Get("b").Len())
}

func TestReset(t *testing.T) {
	store := NewInMemoryStore(5)
	store.Get("s1").AppendUser("bonjour")
	store.Reset("s1")

	assert.Zero(t, store.Get("s1").Len())
}

func TestConcurrentGet(t *testing.T) {
	store := NewInMemoryStore(20)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Get("shared").AppendUser(fmt.Sprintf("m%d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 16, store.Get("shared").Len())
}
