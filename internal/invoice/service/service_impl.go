package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edcviet/invoicegen/internal/cache"
	"github.com/edcviet/invoicegen/internal/clock"
	"github.com/edcviet/invoicegen/internal/datefmt"
	"github.com/edcviet/invoicegen/internal/invoice/domain"
	"github.com/edcviet/invoicegen/internal/invoice/export"
	"github.com/edcviet/invoicegen/internal/invoice/render"
	"github.com/edcviet/invoicegen/internal/money"
	"github.com/edcviet/invoicegen/internal/observability/logger"
	"github.com/edcviet/invoicegen/internal/observability/metrics"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Store    *cache.SessionStore[snowflake.ID, domain.Draft]
	Renderer render.Renderer
	Exporter export.Exporter
	Metrics  *metrics.ServiceMetrics `optional:"true"`
}

// Service holds drafting sessions in memory. Mutations are serialized by a
// single writer lock: every edit loads the current aggregate, applies a
// pure transformation, recomputes the total, and publishes the replacement
// wholesale.
type Service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	store    *cache.SessionStore[snowflake.ID, domain.Draft]
	renderer render.Renderer
	exporter export.Exporter
	metrics  *metrics.ServiceMetrics

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		store:    p.Store,
		renderer: p.Renderer,
		exporter: p.Exporter,
		metrics:  p.Metrics,
		rng:      rand.New(rand.NewSource(p.Clock.Now().UnixNano())),
	}
}

func (s *Service) CreateDraft(ctx context.Context, req domain.CreateDraftRequest) (domain.Draft, error) {
	now := s.clock.Now()
	inv := domain.NewInvoice(now)

	if code := strings.ToUpper(strings.TrimSpace(req.Currency)); code != "" {
		if !money.IsSupportedCurrency(code) {
			return domain.Draft{}, domain.ErrInvalidCurrency
		}
		inv.Currency = code
	}

	draft := domain.Draft{
		ID:        s.genID.Generate(),
		Invoice:   inv,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.store.Set(draft.ID, draft)
	s.mu.Unlock()

	s.metrics.IncDraftCreated()
	logger.FromContext(ctx).Debug("draft created", zap.String("draft_id", draft.ID.String()))
	return draft, nil
}

func (s *Service) GetDraft(ctx context.Context, id string) (domain.Draft, error) {
	draftID, err := domain.ParseID(id)
	if err != nil {
		return domain.Draft{}, domain.ErrInvalidDraftID
	}
	draft, ok := s.store.Get(draftID)
	if !ok {
		return domain.Draft{}, domain.ErrDraftNotFound
	}
	return draft, nil
}

// mutate serializes an edit: load, transform, recompute, publish.
func (s *Service) mutate(id string, fn func(domain.Invoice) (domain.Invoice, error)) (domain.Draft, error) {
	draftID, err := domain.ParseID(id)
	if err != nil {
		return domain.Draft{}, domain.ErrInvalidDraftID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.store.Get(draftID)
	if !ok {
		return domain.Draft{}, domain.ErrDraftNotFound
	}

	next, err := fn(draft.Invoice)
	if err != nil {
		return domain.Draft{}, err
	}

	draft.Invoice = domain.Recompute(next)
	draft.UpdatedAt = s.clock.Now()
	s.store.Set(draft.ID, draft)
	return draft, nil
}

func (s *Service) UpdateBusiness(ctx context.Context, id string, field domain.BusinessField, value string) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		return domain.SetBusinessField(inv, field, value)
	})
}

func (s *Service) UpdateClient(ctx context.Context, id string, field domain.ClientField, value string) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		return domain.SetClientField(inv, field, value)
	})
}

func (s *Service) UpdatePayment(ctx context.Context, id string, field domain.PaymentField, value string) (domain.Draft, error) {
	logger.FromContext(ctx).Debug("payment field edit",
		zap.String("draft_id", id),
		zap.String("field", string(field)),
		zap.String("value", logger.MaskFieldValue(string(field), value)),
	)
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		return domain.SetPaymentField(inv, field, value)
	})
}

func (s *Service) UpdateDelivery(ctx context.Context, id string, field domain.DeliveryField, value string) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		return domain.SetDeliveryField(inv, field, value)
	})
}

func (s *Service) SetNumber(ctx context.Context, id string, number string) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		inv.Number = strings.TrimSpace(number)
		return inv, nil
	})
}

func (s *Service) SetCurrency(ctx context.Context, id string, code string) (domain.Draft, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !money.IsSupportedCurrency(code) {
		return domain.Draft{}, domain.ErrInvalidCurrency
	}
	// Re-tags formatting only; amounts are never rescaled.
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		inv.Currency = code
		return inv, nil
	})
}

func (s *Service) SetDates(ctx context.Context, id string, req domain.SetDatesRequest) (domain.Draft, error) {
	issue, err := normalizeDate(req.IssueDate)
	if err != nil {
		return domain.Draft{}, err
	}
	due, err := normalizeDate(req.DueDate)
	if err != nil {
		return domain.Draft{}, err
	}
	// Issue and due are independent; due before issue is accepted.
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		inv.IssueDate = issue
		inv.DueDate = due
		return inv, nil
	})
}

func (s *Service) SetDiscount(ctx context.Context, id string, raw string) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		inv.Discount = raw
		return inv, nil
	})
}

func (s *Service) AddItem(ctx context.Context, id string) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		return domain.AppendItem(inv), nil
	})
}

func (s *Service) RemoveItem(ctx context.Context, id string, index int) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		return domain.RemoveItemAt(inv, index)
	})
}

func (s *Service) UpdateItem(ctx context.Context, id string, index int, field domain.ItemField, value string) (domain.Draft, error) {
	return s.mutate(id, func(inv domain.Invoice) (domain.Invoice, error) {
		return domain.UpdateItemAt(inv, index, field, value)
	})
}

func (s *Service) RenderHTML(ctx context.Context, id string) (string, error) {
	draft, err := s.ensureNumbered(id)
	if err != nil {
		return "", err
	}
	html, err := s.renderer.RenderHTML(render.Input{Invoice: draft.Invoice})
	if err != nil {
		logger.FromContext(ctx).Error("preview render failed",
			zap.String("draft_id", id), zap.Error(err))
		return "", err
	}
	return html, nil
}

func (s *Service) ExportPDF(ctx context.Context, id string) (domain.ExportResult, error) {
	draft, err := s.ensureNumbered(id)
	if err != nil {
		return domain.ExportResult{}, err
	}

	// The exporter reads a finished snapshot; a failed or retried export
	// never touches draft state.
	result, err := s.exporter.Export(draft.Invoice)
	if err != nil {
		s.metrics.IncExport("failed")
		logger.FromContext(ctx).Error("export failed",
			zap.String("draft_id", id), zap.Error(err))
		return domain.ExportResult{}, domain.ErrExportFailed
	}

	s.metrics.IncExport("success")
	return result, nil
}

// ensureNumbered assigns the invoice code on first render. An invoice that
// already has a number keeps it forever.
func (s *Service) ensureNumbered(id string) (domain.Draft, error) {
	draftID, err := domain.ParseID(id)
	if err != nil {
		return domain.Draft{}, domain.ErrInvalidDraftID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.store.Get(draftID)
	if !ok {
		return domain.Draft{}, domain.ErrDraftNotFound
	}
	if draft.Invoice.Number != "" {
		return draft, nil
	}

	draft.Invoice = domain.EnsureNumber(draft.Invoice, s.clock.Now(), s.rng)
	draft.UpdatedAt = s.clock.Now()
	s.store.Set(draft.ID, draft)
	return draft, nil
}

func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	t, ok := datefmt.Parse(raw)
	if !ok {
		return "", domain.ErrInvalidDate
	}
	return datefmt.ToStorage(t), nil
}
