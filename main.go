// main.go - Entry point for the FruitPie job board

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fruitpie-jobboard/auth"
	"fruitpie-jobboard/config"
	"fruitpie-jobboard/database"
	"fruitpie-jobboard/logging"
	"fruitpie-jobboard/server"
	"fruitpie-jobboard/store"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CLI struct {
	EnvFile string `name:"env-file" help:"Optional .env file read before the environment." default:".env" type:"path"`

	Serve ServeCmd `cmd:"" default:"1" help:"Run the web server."`
	Seed  SeedCmd  `cmd:"" help:"Insert the sample job postings if the board is empty."`
}

// app is what every command starts from.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	db     *gorm.DB
}

func setup(envFile string) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, db: db}, nil
}

type ServeCmd struct{}

func (ServeCmd) Run(cli *CLI) error {
	// STEP 1: Load config, logger and database (tables are migrated on connect)
	rt, err := setup(cli.EnvFile)
	if err != nil {
		return err
	}
	defer database.Close(rt.db) // Release the pool on exit

	if rt.cfg.UsingInsecureSecret() { // SECRET_KEY missing from env and .env
		rt.logger.Warn().Msg("SECRET_KEY is not set; using the insecure development secret")
	}

	// STEP 2: Fill an empty board with the sample postings
	if rt.cfg.SeedOnStart {
		if err := seed(rt); err != nil {
			return err
		}
	}

	// STEP 3: Build the router and HTTP server
	gin.SetMode(rt.cfg.GinMode)                                       // release unless GIN_MODE says otherwise
	tokens := auth.NewTokenManager(rt.cfg.SecretKey, rt.cfg.TokenTTL) // Signs and checks bearer tokens
	srv := &http.Server{
		Addr:              ":" + rt.cfg.Port,
		Handler:           server.New(rt.db, tokens, rt.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// STEP 4: Serve in the background
	errCh := make(chan error, 1)
	go func() {
		rt.logger.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err // Port taken, permission denied, ...
		}
		close(errCh)
	}()

	// STEP 5: Wait for a listen error or SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	// STEP 6: Drain in-flight requests, then exit
	rt.logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second) // Grace period
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	rt.logger.Info().Msg("server exited")
	return nil
}

type SeedCmd struct{}

func (SeedCmd) Run(cli *CLI) error {
	rt, err := setup(cli.EnvFile)
	if err != nil {
		return err
	}
	defer database.Close(rt.db)
	return seed(rt)
}

func seed(rt *app) error {
	n, err := store.NewJobStore(rt.db).SeedIfEmpty(context.Background(), store.SampleJobs())
	if err != nil {
		return err
	}
	if n == 0 {
		rt.logger.Info().Msg("job posts already present; skipping seed")
		return nil
	}
	rt.logger.Info().Int("inserted", n).Msg("seeded sample job posts")
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("fruitpie"),
		kong.Description("FruitPie job board."),
		kong.UsageOnError(),
	)
	if err := kctx.Run(&cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
