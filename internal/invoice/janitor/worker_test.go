package janitor

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/edcviet/invoicegen/internal/cache"
	"github.com/edcviet/invoicegen/internal/invoice/domain"
)

func newTestWorker(t *testing.T, ttl time.Duration) (*Worker, *cache.SessionStore[snowflake.ID, domain.Draft], *snowflake.Node) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	store := cache.NewSessionStore[snowflake.ID, domain.Draft](ttl)
	worker := NewWorker(Params{
		Log:   zap.NewNop(),
		Store: store,
	})
	return worker, store, node
}

func TestRunOnceSweepsExpired(t *testing.T) {
	worker, store, node := newTestWorker(t, 10*time.Millisecond)

	store.Set(node.Generate(), domain.Draft{})
	store.Set(node.Generate(), domain.Draft{})
	time.Sleep(20 * time.Millisecond)
	keep := node.Generate()
	store.Set(keep, domain.Draft{})

	worker.RunOnce()

	if got := store.Len(); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
	if _, ok := store.Get(keep); !ok {
		t.Fatalf("fresh draft was swept")
	}
}

func TestRunOnceNilMetrics(t *testing.T) {
	worker, store, node := newTestWorker(t, 0)
	store.Set(node.Generate(), domain.Draft{})

	// Metrics are optional in the graph; sweeping without them must not panic.
	worker.RunOnce()

	if got := store.Len(); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.SweepInterval != 5*time.Minute {
		t.Fatalf("sweep interval = %v", cfg.SweepInterval)
	}

	custom := Config{SweepInterval: time.Second}.withDefaults()
	if custom.SweepInterval != time.Second {
		t.Fatalf("custom interval = %v", custom.SweepInterval)
	}
}
