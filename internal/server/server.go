package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edcviet/invoicegen/internal/config"
	"github.com/edcviet/invoicegen/internal/invoice/domain"
	"github.com/edcviet/invoicegen/internal/observability/logger"
	"github.com/edcviet/invoicegen/internal/observability/metrics"
)

type Server struct {
	cfg        config.Config
	log        *zap.Logger
	invoiceSvc domain.Service
}

type Params struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	InvoiceSvc domain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		invoiceSvc: p.InvoiceSvc,
	}
}

type EngineParams struct {
	fx.In

	Cfg     config.Config
	Srv     *Server
	Metrics *metrics.ServiceMetrics `optional:"true"`
}

func NewEngine(p EngineParams) *gin.Engine {
	if p.Cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	if p.Metrics != nil {
		engine.Use(metrics.GinMiddleware(p.Metrics))
	}

	registerRoutes(engine, p.Srv)
	return engine
}

func registerRoutes(engine *gin.Engine, s *Server) {
	engine.GET("/healthz", s.Healthz)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	{
		invoices := api.Group("/invoices")
		invoices.POST("", s.CreateInvoice)
		invoices.GET("/:id", s.GetInvoice)
		invoices.PATCH("/:id/business", s.UpdateBusiness)
		invoices.PATCH("/:id/client", s.UpdateClient)
		invoices.PATCH("/:id/payment", s.UpdatePayment)
		invoices.PATCH("/:id/delivery", s.UpdateDelivery)
		invoices.PUT("/:id/number", s.SetNumber)
		invoices.PUT("/:id/currency", s.SetCurrency)
		invoices.PUT("/:id/dates", s.SetDates)
		invoices.PUT("/:id/discount", s.SetDiscount)
		invoices.POST("/:id/items", s.AddItem)
		invoices.PATCH("/:id/items/:index", s.UpdateItem)
		invoices.DELETE("/:id/items/:index", s.RemoveItem)
		invoices.GET("/:id/preview", s.PreviewInvoice)
		invoices.GET("/:id/download", s.DownloadInvoice)
	}
}

// @Summary      Health
// @Description  Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /healthz [get]
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Provide(NewEngine),
	fx.Invoke(RunHTTP),
)
