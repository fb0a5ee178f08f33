package fingerprint

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScanAll scans seq with every fingerprint concurrently, at most limit at a
// time (one per CPU when limit is zero). Results are in fingerprint order.
func ScanAll(ctx context.Context, fps []*Fingerprint, name string, seq []byte, allowOverlap bool, limit int) ([]Result, error) {
	results := make([]Result, len(fps))
	g, ctx := errgroup.WithContext(ctx)
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)
	for i := range fps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fps[i].Scan(name, seq, allowOverlap)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
