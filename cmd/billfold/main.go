package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billfold/internal/client"
	"github.com/smallbiznis/billfold/internal/clock"
	"github.com/smallbiznis/billfold/internal/config"
	"github.com/smallbiznis/billfold/internal/dashboard"
	"github.com/smallbiznis/billfold/internal/estimate"
	"github.com/smallbiznis/billfold/internal/estimate/expiry"
	"github.com/smallbiznis/billfold/internal/expense"
	"github.com/smallbiznis/billfold/internal/invoice"
	"github.com/smallbiznis/billfold/internal/notification"
	"github.com/smallbiznis/billfold/internal/observability/logger"
	"github.com/smallbiznis/billfold/internal/observability/tracing"
	"github.com/smallbiznis/billfold/internal/payment"
	"github.com/smallbiznis/billfold/internal/seed"
	"github.com/smallbiznis/billfold/internal/server"
	"github.com/smallbiznis/billfold/internal/settings"
	"github.com/smallbiznis/billfold/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		notification.Module,
		invoice.Module,
		estimate.Module,
		expiry.Module,
		payment.Module,
		client.Module,
		expense.Module,
		dashboard.Module,
		settings.Module,

		fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger, node *snowflake.Node) error {
			return seed.Demo(conn, cfg, log, node)
		}),

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
