package main

import (
	"github.com/Lynxxxc/RESERVASI/config"
	"github.com/Lynxxxc/RESERVASI/di"
	"github.com/Lynxxxc/RESERVASI/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
