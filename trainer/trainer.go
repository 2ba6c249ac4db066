/*
Package trainer drives grammar extraction over a treebank.

Training makes two passes over the corpus. The first pass normalizes every tree
and collects its symbols; after all trees have been seen, the symbol indexer is
frozen. The second pass normalizes every tree again, extracts its productions
and counts them. Finally the counts are turned into a probabilistic grammar.

Files may be processed by several workers in parallel. Every worker owns its
own symbol indexer, statistics and grammar builder; these are merged when all
workers of a pass are done. The resulting grammar does not depend on the
number of workers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trainer

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treegram/normalize"
	"github.com/npillmayer/treegram/pcfg"
	"github.com/npillmayer/treegram/rules"
	"github.com/npillmayer/treegram/symbols"
	"github.com/npillmayer/treegram/treebank"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'treegram.corpus'.
func tracer() tracing.Trace {
	return tracing.Select("treegram.corpus")
}

// Options control a training run.
type Options struct {
	Config       normalize.Config // normalization settings
	Workers      int              // number of parallel workers; < 2 means sequential
	SkipBadTrees bool             // skip trees failing normalization instead of aborting
}

// TreeRef identifies a tree of a corpus by file and position.
type TreeRef struct {
	FileID string
	Index  int
}

func (ref TreeRef) String() string {
	return fmt.Sprintf("%s: tree #%d", ref.FileID, ref.Index)
}

// Result is the outcome of a training run.
type Result struct {
	Grammar *pcfg.Grammar
	Summary pcfg.Summary
	Stats   *normalize.Stats
	Skipped []TreeRef // trees skipped because of normalization errors
}

type trainer struct {
	src     treebank.Source
	nz      *normalize.Normalizer
	opts    Options
	workers int
	mu      sync.Mutex
	bad     map[TreeRef]struct{}
}

// Train extracts a grammar from all trees of a source.
func Train(ctx context.Context, src treebank.Source, opts Options) (*Result, error) {
	tr := &trainer{
		src:     src,
		nz:      normalize.New(opts.Config),
		opts:    opts,
		workers: opts.Workers,
		bad:     make(map[TreeRef]struct{}),
	}
	if tr.workers < 1 {
		tr.workers = 1
	}
	tracer().Infof("training on %d files with %d worker(s)", len(src.FileIDs()), tr.workers)
	idx, stats, err := tr.index(ctx)
	if err != nil {
		return nil, err
	}
	if err = idx.Build(); err != nil {
		return nil, err
	}
	b, err := tr.count(ctx, idx)
	if err != nil {
		return nil, err
	}
	g, err := b.Finalize()
	if err != nil {
		return nil, err
	}
	res := &Result{
		Grammar: g,
		Summary: g.Summary(stats.ChainLengths),
		Stats:   stats,
		Skipped: tr.skipped(),
	}
	tracer().Infof("trained grammar from %d trees, %d skipped", stats.Trees, len(res.Skipped))
	return res, nil
}

// index is the first pass: normalize trees and collect symbols.
func (tr *trainer) index(ctx context.Context) (*symbols.Indexer, *normalize.Stats, error) {
	idxs := make([]*symbols.Indexer, tr.workers)
	stats := make([]*normalize.Stats, tr.workers)
	for w := range idxs {
		idxs[w] = symbols.NewIndexer()
		stats[w] = normalize.NewStats()
	}
	err := tr.forEachFile(ctx, func(w int, fid string) error {
		forest, err := tr.src.Forest(fid)
		if err != nil {
			return err
		}
		for i, t := range forest {
			ref := TreeRef{FileID: fid, Index: i}
			if t, err = tr.nz.Normalize(t, stats[w]); err != nil {
				if err = tr.skip(ref, err); err != nil {
					return err
				}
				continue
			}
			if err = idxs[w].Observe(t); err != nil {
				return errors.Wrap(err, ref.String())
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	for w := 1; w < tr.workers; w++ {
		if err = idxs[0].Merge(idxs[w]); err != nil {
			return nil, nil, err
		}
		stats[0].Merge(stats[w])
	}
	return idxs[0], stats[0], nil
}

// count is the second pass: normalize trees again and count their productions.
func (tr *trainer) count(ctx context.Context, idx *symbols.Indexer) (*pcfg.Builder, error) {
	builders := make([]*pcfg.Builder, tr.workers)
	for w := range builders {
		b, err := pcfg.NewBuilder(idx)
		if err != nil {
			return nil, err
		}
		builders[w] = b
	}
	err := tr.forEachFile(ctx, func(w int, fid string) error {
		forest, err := tr.src.Forest(fid)
		if err != nil {
			return err
		}
		for i, t := range forest {
			ref := TreeRef{FileID: fid, Index: i}
			if tr.isBad(ref) {
				continue
			}
			if t, err = tr.nz.Normalize(t, nil); err != nil {
				return errors.Wrap(err, ref.String())
			}
			prods, err := rules.Extract(t, idx)
			if err != nil {
				return errors.Wrap(err, ref.String())
			}
			if err = builders[w].Accumulate(prods); err != nil {
				return errors.Wrap(err, ref.String())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for w := 1; w < tr.workers; w++ {
		if err = builders[0].Merge(builders[w]); err != nil {
			return nil, err
		}
	}
	return builders[0], nil
}

// forEachFile distributes the files of the source to the workers. It returns
// the first error of any worker.
func (tr *trainer) forEachFile(ctx context.Context, work func(w int, fid string) error) error {
	g, ctx := errgroup.WithContext(ctx)
	fids := make(chan string)
	g.Go(func() error {
		defer close(fids)
		for _, fid := range tr.src.FileIDs() {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case fids <- fid:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < tr.workers; w++ {
		w := w
		g.Go(func() error {
			for fid := range fids {
				if err := work(w, fid); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (tr *trainer) skip(ref TreeRef, err error) error {
	if !tr.opts.SkipBadTrees {
		return errors.Wrap(err, ref.String())
	}
	tracer().Errorf("skipping %s: %v", ref, err)
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.bad[ref] = struct{}{}
	return nil
}

func (tr *trainer) isBad(ref TreeRef) bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	_, bad := tr.bad[ref]
	return bad
}

func (tr *trainer) skipped() []TreeRef {
	refs := make([]TreeRef, 0, len(tr.bad))
	for ref := range tr.bad {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].FileID != refs[j].FileID {
			return refs[i].FileID < refs[j].FileID
		}
		return refs[i].Index < refs[j].Index
	})
	return refs
}
