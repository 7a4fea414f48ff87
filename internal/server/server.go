package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/smallbiznis/billfold/internal/client/domain"
	"github.com/smallbiznis/billfold/internal/config"
	dashboarddomain "github.com/smallbiznis/billfold/internal/dashboard/domain"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
	expensedomain "github.com/smallbiznis/billfold/internal/expense/domain"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	"github.com/smallbiznis/billfold/internal/invoice/render"
	notificationdomain "github.com/smallbiznis/billfold/internal/notification/domain"
	"github.com/smallbiznis/billfold/internal/observability/logger"
	paymentdomain "github.com/smallbiznis/billfold/internal/payment/domain"
	settingsdomain "github.com/smallbiznis/billfold/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server holds the HTTP handlers and their service dependencies.
type Server struct {
	cfg config.Config
	log *zap.Logger

	invoiceSvc      invoicedomain.Service
	estimateSvc     estimatedomain.Service
	paymentSvc      paymentdomain.Service
	clientSvc       clientdomain.Service
	expenseSvc      expensedomain.Service
	dashboardSvc    dashboarddomain.Service
	settingsSvc     settingsdomain.Service
	notificationSvc notificationdomain.Service
	renderer        render.Renderer
}

// ServerParam collects the server dependencies.
type ServerParam struct {
	fx.In

	Cfg             config.Config
	Log             *zap.Logger
	InvoiceSvc      invoicedomain.Service
	EstimateSvc     estimatedomain.Service
	PaymentSvc      paymentdomain.Service
	ClientSvc       clientdomain.Service
	ExpenseSvc      expensedomain.Service
	DashboardSvc    dashboarddomain.Service
	SettingsSvc     settingsdomain.Service
	NotificationSvc notificationdomain.Service
	Renderer        render.Renderer
}

// NewServer constructs the HTTP server.
func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:             p.Cfg,
		log:             p.Log.Named("server"),
		invoiceSvc:      p.InvoiceSvc,
		estimateSvc:     p.EstimateSvc,
		paymentSvc:      p.PaymentSvc,
		clientSvc:       p.ClientSvc,
		expenseSvc:      p.ExpenseSvc,
		dashboardSvc:    p.DashboardSvc,
		settingsSvc:     p.SettingsSvc,
		notificationSvc: p.NotificationSvc,
		renderer:        p.Renderer,
	}
}

// NewEngine builds the gin engine with the shared middleware stack.
func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz"},
	}))
	return engine
}

// RegisterRoutes attaches every API route.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoice)
	api.PATCH("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.POST("/invoices/:id/send", s.SendInvoice)
	api.POST("/invoices/:id/view", s.MarkInvoiceViewed)
	api.GET("/invoices/:id/payments", s.ListInvoicePayments)
	api.GET("/invoices/:id/document", s.InvoiceDocument)

	api.POST("/estimates", s.CreateEstimate)
	api.GET("/estimates", s.ListEstimates)
	api.GET("/estimates/:id", s.GetEstimate)
	api.PATCH("/estimates/:id", s.UpdateEstimate)
	api.DELETE("/estimates/:id", s.DeleteEstimate)
	api.POST("/estimates/:id/send", s.SendEstimate)
	api.POST("/estimates/:id/accept", s.AcceptEstimate)
	api.POST("/estimates/:id/reject", s.RejectEstimate)
	api.POST("/estimates/:id/expire", s.ExpireEstimate)

	api.POST("/payments", s.RecordPayment)
	api.GET("/payments", s.ListPayments)

	api.POST("/clients", s.CreateClient)
	api.GET("/clients", s.ListClients)
	api.GET("/clients/:id", s.GetClient)
	api.PATCH("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.POST("/expenses", s.CreateExpense)
	api.GET("/expenses", s.ListExpenses)
	api.GET("/expenses/:id", s.GetExpense)
	api.DELETE("/expenses/:id", s.DeleteExpense)

	api.GET("/dashboard/stats", s.DashboardStats)
	api.GET("/dashboard/activity", s.DashboardActivity)

	api.GET("/settings", s.GetSettings)
	api.PATCH("/settings", s.UpdateSettings)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
}

// RunHTTP starts the listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, s *Server) {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", s.cfg.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

// Module wires the HTTP surface.
var Module = fx.Module("server",
	fx.Provide(render.NewRenderer),
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(engine *gin.Engine, s *Server) {
		s.RegisterRoutes(engine)
	}),
	fx.Invoke(RunHTTP),
)
