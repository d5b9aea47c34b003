package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/placarhq/placar/internal/adapters/http/api"
	"github.com/placarhq/placar/internal/adapters/repository"
	service "github.com/placarhq/placar/internal/app"
	"github.com/placarhq/placar/internal/cli"
	"github.com/placarhq/placar/internal/config"
	"github.com/placarhq/placar/internal/render"
	"github.com/placarhq/placar/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	serve := flag.Bool("serve", false, "serve the read API over HTTP instead of the interactive menu")
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since the logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Positional arguments override the configured CSV paths, matching
	// the historical invocation: placar <times.csv> <partidas.csv>
	teamsPath, matchesPath := cfg.TeamsPath, cfg.MatchesPath
	if flag.NArg() >= 2 {
		teamsPath, matchesPath = flag.Arg(0), flag.Arg(1)
	} else if !*serve {
		os.Stdout.WriteString("Dica: voce pode passar caminhos dos CSVs: " + os.Args[0] + " <times.csv> <partidas.csv>\n")
		os.Stdout.WriteString("Tentando abrir '" + teamsPath + "' e '" + matchesPath + "'.\n")
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithTeamsPath(teamsPath),
		service.WithMatchesPath(matchesPath),
		service.WithMaxSearchResults(cfg.MaxSearchResults),
		service.WithTeamRegistry(repository.NewTeamRegistry(repository.WithTeamCapacity(cfg.TeamCapacity))),
		service.WithMatchRegistry(repository.NewMatchRegistry(repository.WithMatchCapacity(cfg.MatchCapacity))),
		service.WithRenderer(render.New(
			render.WithLogger(log),
			render.WithExportPath(cfg.ExportPath),
			render.WithNameWidth(cfg.NameWidth),
		)),
	)

	// A failed or empty team source is fatal; a missing match source was
	// already tolerated inside Load.
	if err := svc.Load(ctx); err != nil {
		log.Error(ctx, "failed to load season", logger.Error(err))
		os.Exit(1)
	}

	if *serve {
		runServer(ctx, cfg.Addr, svc, log)
		return
	}

	menu := cli.New(svc, cli.WithLogger(log))
	if err := menu.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error(ctx, "menu loop failed", logger.Error(err))
		os.Exit(1)
	}
}

// runServer exposes the read API until the context is cancelled.
func runServer(ctx context.Context, addr string, svc *service.Service, log logger.Logger) {
	mux := http.NewServeMux()
	api.NewServer(svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
