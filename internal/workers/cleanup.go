package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/service"
)

// cleanupWorker deletes produced files once they are older than ttl.
type cleanupWorker struct {
	files    service.FileService
	interval time.Duration
	ttl      time.Duration

	logger *logger.Logger
}

func NewCleanupWorker(files service.FileService, cfg config.Workers, logger *logger.Logger) Worker {
	return &cleanupWorker{
		files:    files,
		interval: cfg.CleanupInterval,
		ttl:      cfg.FileTTL,
		logger:   logger.GetChildLogger(),
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (c *cleanupWorker) Run(ctx context.Context) {
	if c.interval <= 0 || c.ttl <= 0 {
		c.logger.Warn().Msg("artifact cleanup disabled")
		return
	}

	c.logger.Info().
		Dur("interval", c.interval).
		Dur("ttl", c.ttl).
		Msg("artifact cleanup started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("artifact cleanup stopped")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *cleanupWorker) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	removed, err := c.files.CleanupExpired(ctx, c.ttl)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.logger.Err(err).Msg("artifact cleanup failed")
		return
	}

	if removed > 0 {
		c.logger.Info().Int("removed", removed).Msg("expired artifacts removed")
	}
}
