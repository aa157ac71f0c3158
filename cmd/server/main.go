package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/JSchwerberg/the-substrate-sub001/internal/engine"
	"github.com/JSchwerberg/the-substrate-sub001/internal/server"
	"github.com/JSchwerberg/the-substrate-sub001/internal/version"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	var seed int64
	var seedName string
	var difficulty string
	var catalogPath string
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&seedName, "seed-name", "", "Named master seed; hashed to a stable value, overrides -seed")
	flag.StringVar(&difficulty, "difficulty", "normal", "Default difficulty: easy, normal, hard")
	flag.StringVar(&catalogPath, "catalog", "", "Path to a kind catalog override (YAML)")
	flag.Parse()

	logger.Log.Info("Starting Substrate server...")
	logger.Log.Info(version.String())

	if seedName != "" {
		seed = utils.StringToSeed(seedName)
	}

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("Using random master seed: %d", cfg.Seed)
	}
	cfg.Difficulty = engine.ParseDifficulty(difficulty)
	cfg.CatalogPath = catalogPath

	port := os.Getenv("SUBSTRATE_PORT")
	if port == "" {
		port = "8080"
	}

	service, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Engine init error:", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(service, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
