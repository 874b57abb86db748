package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/apbharucha/poker/advisor"
	"github.com/apbharucha/poker/advisor/model"
	"github.com/apbharucha/poker/internal/relay"
)

var CLI struct {
	Config     string `short:"c" default:"advised.hcl" help:"Path to HCL configuration file"`
	Addr       string `short:"a" help:"Listen address (overrides config)"`
	LogLevel   string `short:"l" help:"Log level (overrides config)"`
	Parameters string `short:"p" help:"Path to learned parameters JSON file (overrides config)"`
}

func main() {
	ctx := kong.Parse(&CLI)

	cfg, err := relay.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		ctx.Exit(1)
	}

	// Apply command line overrides
	if CLI.Addr != "" {
		cfg.Server.Addr = CLI.Addr
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}
	if CLI.Parameters != "" {
		cfg.Advisor.ParametersFile = CLI.Parameters
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	var opts []advisor.Option
	if cfg.Advisor.ParametersFile != "" {
		store := model.NewStore(relay.FileFetcher{Path: cfg.Advisor.ParametersFile})
		opts = append(opts, advisor.WithParameterStore(store))
		logger.Info("Using learned parameters", "file", cfg.Advisor.ParametersFile)
	}
	engine := advisor.NewEngine(opts...)

	server := relay.NewServer(cfg, engine, logger, quartz.NewReal())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Shutting down relay...")
		_ = server.Stop()
		os.Exit(0)
	}()

	if err := server.Start(); err != nil {
		logger.Error("Relay failed", "error", err)
		ctx.Exit(1)
	}
}
