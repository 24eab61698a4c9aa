package collector

import (
	"context"
	"errors"

	"github.com/Atul9/coveralls-api/config"
	"github.com/Atul9/coveralls-api/pkg/core"
	"github.com/Atul9/coveralls-api/pkg/coverage"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/Atul9/coveralls-api/pkg/report"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

type collector struct {
	logger        lumber.Logger
	includeSource bool
	skipMissing   bool
	exclude       []string
	parallelism   int
}

// New returns a new instance of Collector
func New(cfg *config.CoverallsConfig, logger lumber.Logger) (core.Collector, error) {
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			logger.Errorf("invalid exclude pattern %q", pattern)
			return nil, doublestar.ErrBadPattern
		}
	}
	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = global.DefaultParallelism
	}
	return &collector{
		logger:        logger,
		includeSource: cfg.IncludeSource,
		skipMissing:   cfg.SkipMissing,
		exclude:       cfg.Exclude,
		parallelism:   parallelism,
	}, nil
}

// Collect reads every profiled file concurrently and adds the resulting
// sources to rpt in profile order once all of them are built.
func (c *collector) Collect(ctx context.Context, rpt *report.Report, files []core.FileProfile) error {
	included := make([]core.FileProfile, 0, len(files))
	for _, f := range files {
		if c.excluded(f.Name) {
			c.logger.Debugf("excluding %s", f.Name)
			continue
		}
		included = append(included, f)
	}

	sources := make([]*report.Source, len(included))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i := range included {
		i, f := i, included[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := report.NewSource(f.Name, f.Path, f.Lines, f.Branches, c.includeSource)
			if err != nil {
				if c.skipMissing && errors.Is(err, errs.KindFileRead) {
					c.logger.Warnf("skipping %s: %v", f.Name, err)
					return nil
				}
				c.logger.Errorf("failed to build coverage for %s: %v", f.Name, err)
				return err
			}
			if dropped := coverage.OutOfRange(f.Lines, len(src.Coverage)); dropped > 0 {
				c.logger.Debugf("%s: ignored %d hit entries outside of lines 1..%d", f.Name, dropped, len(src.Coverage))
			}
			sources[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, src := range sources {
		rpt.AddSource(src)
	}
	c.logger.Infof("collected coverage for %d of %d files", rpt.Len(), len(files))
	return nil
}

func (c *collector) excluded(name string) bool {
	for _, pattern := range c.exclude {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
