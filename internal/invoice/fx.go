package invoice

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/edcviet/invoicegen/internal/cache"
	"github.com/edcviet/invoicegen/internal/config"
	"github.com/edcviet/invoicegen/internal/invoice/domain"
	"github.com/edcviet/invoicegen/internal/invoice/export"
	"github.com/edcviet/invoicegen/internal/invoice/janitor"
	"github.com/edcviet/invoicegen/internal/invoice/render"
	"github.com/edcviet/invoicegen/internal/invoice/service"
)

var Module = fx.Module("invoice.service",
	fx.Provide(func(cfg config.Config) *cache.SessionStore[snowflake.ID, domain.Draft] {
		return cache.NewSessionStore[snowflake.ID, domain.Draft](cfg.DraftTTL)
	}),
	fx.Provide(render.NewRenderer),
	fx.Provide(export.NewPDFExporter),
	fx.Provide(service.NewService),
	janitor.Module,
)
