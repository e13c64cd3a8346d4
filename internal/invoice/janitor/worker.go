// Package janitor sweeps abandoned drafting sessions out of the in-memory
// store. The store expires entries lazily on access; drafts nobody reads
// again would otherwise sit in memory until process exit.
package janitor

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edcviet/invoicegen/internal/cache"
	"github.com/edcviet/invoicegen/internal/invoice/domain"
	"github.com/edcviet/invoicegen/internal/observability/metrics"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Store   *cache.SessionStore[snowflake.ID, domain.Draft]
	Metrics *metrics.ServiceMetrics `optional:"true"`
	Config  Config                  `optional:"true"`
}

type Worker struct {
	log     *zap.Logger
	store   *cache.SessionStore[snowflake.ID, domain.Draft]
	metrics *metrics.ServiceMetrics
	cfg     Config
}

func NewWorker(p Params) *Worker {
	return &Worker{
		log:     p.Log.Named("invoice.janitor"),
		store:   p.Store,
		metrics: p.Metrics,
		cfg:     p.Config.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce sweeps expired drafts and refreshes the active-drafts gauge.
func (w *Worker) RunOnce() {
	purged := w.store.PurgeExpired()
	active := w.store.Len()

	w.metrics.AddDraftsPurged(purged)
	w.metrics.SetDraftsActive(active)

	if purged > 0 {
		w.log.Info("swept expired drafts",
			zap.Int("purged", purged),
			zap.Int("active", active),
		)
	}
}
