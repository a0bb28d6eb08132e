package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedServiceBump(t *testing.T) {
	feed := NewFeedService()
	assert.Equal(t, int64(0), feed.Version())

	assert.Equal(t, int64(1), feed.Bump())
	assert.Equal(t, int64(2), feed.Bump())
	assert.Equal(t, int64(2), feed.Version())
}

func TestFeedServiceConcurrentBump(t *testing.T) {
	feed := NewFeedService()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feed.Bump()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), feed.Version())
}
