package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stwalsh4118/cadastre/internal/models"
)

// DefaultExpandParallelism bounds concurrent child-region requests.
const DefaultExpandParallelism = 4

// RegionBranch is one node of a materialized region tree. It exists only for
// display and is rebuilt on every call.
type RegionBranch struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Children []*RegionBranch `json:"children,omitempty"`
}

// RegistryData marks RegionBranch as a registry record.
func (RegionBranch) RegistryData() {}

// ExpandRegions fetches depth levels of children below roots, level by level,
// with at most parallelism requests in flight. depth 0 returns the roots
// alone. Regions the registry lists without an id are kept as leaves. The
// first failed request cancels the rest and no tree is returned.
func ExpandRegions(ctx context.Context, svc CadastreService, roots []models.Region, depth, parallelism int) ([]*RegionBranch, error) {
	if parallelism <= 0 {
		parallelism = DefaultExpandParallelism
	}

	branches := make([]*RegionBranch, 0, len(roots))
	for _, r := range roots {
		branches = append(branches, &RegionBranch{ID: r.ID, Name: r.Name})
	}

	level := branches
	for d := 0; d < depth && len(level) > 0; d++ {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(parallelism)

		for _, b := range level {
			if b.ID == "" {
				// no id to look children up by; kept as a leaf
				continue
			}
			b := b // per-iteration copy; toolchain predates Go 1.22 loop variable semantics
			g.Go(func() error {
				children, err := svc.RegionChildren(gctx, models.Region{ID: b.ID, Name: b.Name})
				if err != nil {
					return err
				}
				b.Children = make([]*RegionBranch, 0, len(children))
				for _, c := range children {
					b.Children = append(b.Children, &RegionBranch{ID: c.ID, Name: c.Name})
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		var next []*RegionBranch
		for _, b := range level {
			next = append(next, b.Children...)
		}
		level = next
	}

	return branches, nil
}
