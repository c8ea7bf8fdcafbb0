package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/logging"
	"github.com/2beens/fitcoach/internal/report"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/tracker"
	"github.com/2beens/fitcoach/pkg"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional .env file with FITCOACH_USER_ID and FITCOACH_TOKEN")
	userID := flag.String("user", "", "user id, overrides FITCOACH_USER_ID")
	token := flag.String("token", "", "bearer token, overrides FITCOACH_TOKEN")
	watch := flag.String("watch", "", "cron schedule to re-render the dashboard on, e.g. \"@every 1m\"")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{LogLevel: *logLevel})

	if exists, _ := pkg.PathExists(*envFile, false); exists {
		if err := godotenv.Load(*envFile); err != nil {
			log.Errorf("load env file [%s]: %s", *envFile, err)
		}
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	if *userID == "" {
		*userID = os.Getenv("FITCOACH_USER_ID")
	}
	if *token == "" {
		*token = os.Getenv("FITCOACH_TOKEN")
	}
	sess := session.New(*userID, *token)
	if sess.IsAnonymous() {
		log.Warnln("no user set, showing demo data. use -user or FITCOACH_USER_ID")
	}

	httpClient := tracing.NewTracedHttpClient(cfg.BackendTimeout.Duration)
	analyticsClient := analytics.NewClient(cfg.BackendURL, httpClient, cfg.WeeklyCacheTTL.Duration)
	aggregator := dashboard.NewAggregator(
		analyticsClient,
		cfg.SyntheticSeed,
		metrics.NewManager("fitcoach", "cli", metrics.SetupPrometheus()),
	)
	builder := report.NewBuilder(aggregator, analyticsClient, tracker.NewClient(cfg.BackendURL, httpClient))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	render := func() {
		r, err := builder.Build(ctx, sess)
		if err != nil {
			log.Errorf("build dashboard report: %s", err)
			return
		}
		if err := r.WriteText(os.Stdout); err != nil {
			log.Errorf("render dashboard report: %s", err)
		}
	}

	if *watch == "" {
		render()
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(*watch, func() {
		fmt.Println()
		render()
	}); err != nil {
		log.Fatalf("invalid watch schedule [%s]: %s", *watch, err)
	}

	render()
	c.Start()
	log.Infof("watching dashboard on schedule: %s", *watch)

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	<-chOsInterrupt
	cancel()

	stopCtx := c.Stop()
	<-stopCtx.Done()
}
