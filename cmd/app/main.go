package main

import (
	"context"

	"tavolo/config"
	"tavolo/di"
	"tavolo/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	extender := di.InitializeJobs()
	go extender.Run(context.Background())

	http := di.InitializeService()
	http.Serve()
}
