package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/starfolksoftware/invoicegen/internal/clock"
	"github.com/starfolksoftware/invoicegen/internal/config"
	"github.com/starfolksoftware/invoicegen/internal/logger"
	"github.com/starfolksoftware/invoicegen/internal/server"
	"github.com/starfolksoftware/invoicegen/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
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
