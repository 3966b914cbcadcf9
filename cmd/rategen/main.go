package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookingproto/rategen/internal/config"
	"github.com/bookingproto/rategen/internal/generator"
	"github.com/bookingproto/rategen/internal/log"
	"github.com/bookingproto/rategen/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Usage = usage
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "generate"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := log.Init(cfg.Log.Level); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()

	gen := generator.New(ctx, cfg)
	defer gen.Close()

	switch command {
	case "generate":
		if _, err := gen.Run(ctx); err != nil {
			stdlog.Fatalf("Generation failed: %v", err)
		}

	case "serve":
		snap, err := gen.Run(ctx)
		if err != nil {
			stdlog.Fatalf("Generation failed: %v", err)
		}

		srv := server.New(cfg.Server.Address, server.NewRouter(snap, cfg.Output.Dir))
		go func() {
			if err := srv.Start(ctx); err != nil {
				stdlog.Fatalf("Server failed: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			stdlog.Fatalf("Server forced to shutdown: %v", err)
		}

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: rategen [flags] [command]

Commands:
  generate   fetch the sheet, compute rates and write the output files (default)
  serve      generate, then serve the output and a JSON API

Flags:
`)
	flag.PrintDefaults()
}
