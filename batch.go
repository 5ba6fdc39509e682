package wordjson

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// ParseAll parses each input independently and concurrently using a
// bounded goroutine pool, returning one Document per input in the same
// order. Each Document gets its own allocator, so no state is shared
// across workers (spec §5: "a document may be constructed concurrently
// in different threads provided each has its own input view and
// allocation strategy").
//
// newStrategy is called once per input, from the worker that parses it,
// so a caller wanting bounded allocation per input can hand back a fresh
// caller-owned buffer per call.
func ParseAll(inputs [][]byte, newStrategy func(input []byte) AllocationStrategy, poolSize int) ([]*Document, error) {
	if poolSize <= 0 {
		poolSize = 1
	}
	results := make([]*Document, len(inputs))

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	wg.Add(len(inputs))
	for i, input := range inputs {
		i, input := i, input
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i] = ParseBytes(input, newStrategy(input))
		})
		if submitErr != nil {
			wg.Done()
			results[i] = ParseBytes(input, newStrategy(input))
		}
	}
	wg.Wait()
	return results, nil
}
