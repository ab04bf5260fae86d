package loader

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oaskit/codec"
	"github.com/erraggy/oaskit/merge"
	"github.com/erraggy/oaskit/model"
)

// Loader reads static OpenAPI files and merges them into one model.
type Loader struct {
	cfg    *config
	reader *codec.Reader
}

// New creates a Loader.
func New(opts ...Option) (*Loader, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	reader := cfg.reader
	if reader == nil {
		reader, err = codec.NewReader(codec.WithMaxSize(cfg.maxSize), codec.WithLogger(cfg.logger))
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
	}
	return &Loader{cfg: cfg, reader: reader}, nil
}

// Load reads the primary source, if any, and the standard sources, then
// merges them. The primary document wins conflicts, then standard sources
// in the given order. Sources rejected by the locator filter are skipped.
//
// Sources are decoded concurrently. The first failure cancels the rest and
// is returned; no partial model is returned with it. Load returns nil
// without error when no source is accepted.
func (l *Loader) Load(ctx context.Context, primary *Source, standard ...Source) (*model.OpenAPI, error) {
	sources := make([]Source, 0, len(standard)+1)
	if primary != nil {
		sources = append(sources, *primary)
	}
	sources = append(sources, standard...)

	results, err := l.ReadAll(ctx, sources...)
	if err != nil {
		return nil, err
	}
	docs := make([]*model.OpenAPI, 0, len(results))
	for _, res := range results {
		if res != nil {
			docs = append(docs, res.Document)
		}
	}
	return merge.Documents(docs...), nil
}

// ReadAll decodes sources concurrently. The result has one entry per
// source, in order; skipped sources have a nil entry.
func (l *Loader) ReadAll(ctx context.Context, sources ...Source) ([]*codec.Result, error) {
	results := make([]*codec.Result, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.concurrency)
	for i, src := range sources {
		if !l.accepts(src) {
			l.cfg.logger.Debug("loader: skipping source", "locator", src.Locator)
			continue
		}
		g.Go(func() error {
			res, err := l.read(ctx, src)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Read decodes one source.
func (l *Loader) Read(ctx context.Context, src Source) (*codec.Result, error) {
	return l.read(ctx, src)
}

func (l *Loader) accepts(src Source) bool {
	return l.cfg.accept == nil || l.cfg.accept(src.Locator)
}

func (l *Loader) read(ctx context.Context, src Source) (*codec.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src.Open == nil {
		return nil, fmt.Errorf("loader: source %q has no content", src.Locator)
	}
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("loader: failed to open %s: %w", src.Locator, err)
	}
	defer func() {
		_ = rc.Close()
	}()

	res, err := l.reader.ReadFrom(src.Locator, rc, src.Format)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	for _, w := range res.Warnings {
		l.cfg.logger.Warn("loader: "+w.Message, "locator", src.Locator, "path", w.Path)
	}
	l.cfg.logger.Debug("loader: read source",
		"locator", src.Locator, "format", res.Format.String(), "version", res.Version)
	return res, nil
}
