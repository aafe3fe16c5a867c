package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/pepperkit/stopwords/pkg/apiserver"
	"github.com/pepperkit/stopwords/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	port := flag.Int("port", 0, "port (overrides the configuration file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *port != 0 {
		cfg.Server.Port = *port
	}

	server := apiserver.NewServer(cfg.Properties(), logger)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("API listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
