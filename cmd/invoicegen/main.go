package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/edcviet/invoicegen/internal/clock"
	"github.com/edcviet/invoicegen/internal/config"
	"github.com/edcviet/invoicegen/internal/invoice"
	"github.com/edcviet/invoicegen/internal/observability"
	"github.com/edcviet/invoicegen/internal/observability/logger"
	"github.com/edcviet/invoicegen/internal/server"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		invoice.Module,
		server.Module,
	)
	app.Run()
}
