package collector

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scriptwatch/exporter.git/internal/model"
	"github.com/scriptwatch/exporter.git/internal/reaper"
)

// Source produces one batch of raw script output.
type Source interface {
	Run(ctx context.Context) (string, error)
}

// Parser converts raw output into samples, dropping malformed lines.
type Parser interface {
	Parse(text string) []model.Sample
}

// Registry is the writer side of the metric store.
type Registry interface {
	Begin()
	Set(sample model.Sample)
	Commit()
}

// Collector runs the collection cycle on a fixed interval: execute the
// script, parse its output, publish a fresh generation, reap finished
// children, sleep. Cycle failures are logged and produce an empty
// generation; the loop itself never stops until the context is cancelled.
type Collector struct {
	source   Source
	parser   Parser
	registry Registry
	interval time.Duration
	logger   *zerolog.Logger
}

func New(source Source, parser Parser, registry Registry, interval time.Duration, logger *zerolog.Logger) *Collector {
	return &Collector{
		source:   source,
		parser:   parser,
		registry: registry,
		interval: interval,
		logger:   logger,
	}
}

// Run executes cycles until ctx is cancelled. The first cycle starts
// immediately rather than waiting out the interval.
func (c *Collector) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.Cycle(ctx)

		if n := reaper.Reap(); n > 0 {
			c.logger.Debug().Int("children", n).Msg("reaped finished children")
		}

		select {
		case <-ctx.Done():
			c.logger.Info().Msg("Collector stopped.")
			return nil
		case <-ticker.C:
		}
	}
}

// Cycle performs one collect-parse-publish pass. The registry is committed
// even when the script fails, so stale series never outlive their cycle.
func (c *Collector) Cycle(ctx context.Context) {
	var samples []model.Sample

	out, err := c.source.Run(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("error executing command")
	} else {
		samples = c.parser.Parse(out)
	}

	c.registry.Begin()
	for _, s := range samples {
		c.registry.Set(s)
	}
	c.registry.Commit()

	c.logger.Info().Int("samples", len(samples)).Msg("metrics updated")
}
