package plot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clusterstep"
)

// RenderFrames writes one HTML page per snapshot into dir, named
// frame_0000.html, frame_0001.html, ... in snapshot order. Frames are
// independent, so they render concurrently; the first failure cancels
// the rest.
func RenderFrames(ctx context.Context, dir string, snaps []clusterstep.Snapshot, optFns ...func(*Options)) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	for i, snap := range snaps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			name := filepath.Join(dir, fmt.Sprintf("frame_%04d.html", i))
			f, err := os.Create(name)
			if err != nil {
				return err
			}

			if err := Render(f, snap, optFns...); err != nil {
				f.Close()
				return fmt.Errorf("render %s: %w", name, err)
			}

			return f.Close()
		})
	}

	return g.Wait()
}
