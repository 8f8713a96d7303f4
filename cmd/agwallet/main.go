package main

import (
	"fmt"

	"github.com/agchain/agwallet/internal/adapter"
	"github.com/agchain/agwallet/internal/client"
	"github.com/agchain/agwallet/internal/config"
	"github.com/agchain/agwallet/internal/crypto"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/service"
	"github.com/agchain/agwallet/internal/store"
	"github.com/agchain/agwallet/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("agwallet")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	node := adapter.NewHTTPNodeAdapter(cfg.Node, log)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages.Wallet, crypto.NewKeyVaultService(), node, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init wallet app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("wallet run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
