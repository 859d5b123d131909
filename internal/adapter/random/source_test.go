package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"random-service/internal/core/port"
)

var _ port.ByteSource = (*Source)(nil)

func TestSourceCoversRange(t *testing.T) {
	src := NewSource()
	seen := make(map[uint8]bool)
	// 256 buckets are all hit with overwhelming probability well before
	// this many draws.
	for i := 0; i < 100000 && len(seen) < 256; i++ {
		seen[src.Byte()] = true
	}
	assert.Len(t, seen, 256)
}

func TestSourceConcurrent(t *testing.T) {
	src := NewSource()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = src.Byte()
			}
		}()
	}
	wg.Wait()
}
