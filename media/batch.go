// ABOUTME: Parallel probing for the media bin at startup
// ABOUTME: Fans probe calls out over a worker pool and collects results

package media

import (
	"sync"

	"cutline/pool"
)

// ProbeAll probes every path concurrently and returns the results keyed
// by path. Files that fail to probe are simply absent from the map; the
// caller decides whether a missing entry matters.
func ProbeAll(paths []string, probe Prober) map[string]Info {
	if probe == nil {
		probe = Probe
	}

	results := make(map[string]Info, len(paths))

	var mu sync.Mutex

	workers := pool.New(0, len(paths))
	defer workers.Close()

	for _, path := range paths {
		path := path

		workers.Submit(func() {
			info, err := probe(path)
			if err != nil {
				return
			}

			mu.Lock()
			results[path] = info
			mu.Unlock()
		})
	}

	workers.Wait()

	return results
}
