package rewrite

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RewriteAll renders independent nodes concurrently, each with the same
// width and offset. Results keep input order. Every render only reads its
// own subtree and the shared source buffer, so no coordination is needed
// beyond the worker limit; jobs <= 0 means one worker per CPU.
//
// The first failing render fails the whole batch.
func RewriteAll(ctx *Context, nodes []any, width, offset, jobs int) ([]string, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]string, len(nodes))

	var g errgroup.Group
	g.SetLimit(min(jobs, len(nodes)))
	for i, node := range nodes {
		i, node := i, node
		g.Go(func() error {
			s, err := RewriteNode(ctx, node, width, offset)
			if err != nil {
				return err
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
