package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"art-auction/internal/auth"
	bidding "art-auction/internal/biddingService"
	catalog "art-auction/internal/catalogService"
	"art-auction/internal/config"
	"art-auction/internal/mailer"
	model "art-auction/internal/models"
	"art-auction/internal/notify"
	"art-auction/internal/repository"
	"art-auction/internal/server"
	"art-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// store is the union of the persistence roles the services need
type store interface {
	repository.BidLedger
	repository.Catalog
	repository.BidderDirectory
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		utils.Fatal("failed to load .env", map[string]any{"error": err.Error()})
	}

	app := &cli.App{
		Name:  "art-auction",
		Usage: "Run the auction API or issue development tokens",
		Commands: []*cli.Command{
			{
				Name:    "serve",
				Aliases: []string{"s"},
				Usage:   "run server",
				Flags:   config.Flags(),
				Action: func(c *cli.Context) error {
					cfg, err := config.FromContext(c)
					if err != nil {
						return err
					}
					return serve(c.Context, cfg)
				},
			},
			{
				Name:  "token",
				Usage: "print a signed access token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "jwt_secret", EnvVars: []string{"JWT_SECRET"}, Required: true, Usage: "HS256 signing secret"},
					&cli.StringFlag{Name: "user", Required: true, Usage: "bidder id placed in the userId claim"},
					&cli.StringFlag{Name: "role", Value: "", Usage: "role claim, e.g. admin"},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
				},
				Action: func(c *cli.Context) error {
					token, err := auth.NewVerifier(c.String("jwt_secret")).Issue(c.String("user"), c.String("role"), c.Duration("ttl"))
					if err != nil {
						return err
					}
					fmt.Println(token)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		utils.Fatal("auction server exited", map[string]any{"error": err.Error()})
	}
}

func serve(parent context.Context, cfg config.Config) error {
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var m notify.Mailer = mailer.Noop{}
	if cfg.MailEnabled() {
		mg, err := mailer.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailFrom, cfg.AdminEmail)
		if err != nil {
			return err
		}
		m = mg
	}

	hub := notify.NewHub(cfg.SubscriberBuffer)
	defer hub.Close()

	// the dispatcher snapshots through the service it is notified by
	var biddingSvc *bidding.BiddingService
	dispatcher := notify.NewDispatcher(hub, m, func(ctx context.Context) ([]model.BidView, error) {
		return biddingSvc.LatestBids(ctx)
	}, cfg.FanoutQueueSize, cfg.EmailConcurrency)

	biddingSvc = bidding.NewBiddingService(st, st, st,
		bidding.WithNotifier(dispatcher),
		bidding.WithLinkRetry(cfg.LinkRetryAttempts, 50*time.Millisecond, time.Second),
	)
	catalogSvc := catalog.NewCatalogService(st, st)

	var verifier *auth.Verifier
	if cfg.JWTSecret != "" {
		verifier = auth.NewVerifier(cfg.JWTSecret)
	} else {
		utils.Warn("JWT_SECRET not set, identity checks disabled", nil)
	}

	router := server.SetupRouter(biddingSvc, catalogSvc, hub, verifier)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Run(gctx, cfg.Addr(), router) })
	g.Go(func() error { return dispatcher.Run(gctx) })
	g.Go(func() error { return biddingSvc.RunReconciler(gctx, cfg.ReconcileInterval) })

	err = g.Wait()
	utils.Info("auction server stopped", nil)
	return err
}

// openStore connects to MongoDB when configured, otherwise runs on a seeded in-memory store
func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	if cfg.MongoURI == "" {
		repo := repository.NewMemoryRepo()
		if err := seedDemo(ctx, repo); err != nil {
			return nil, nil, err
		}
		utils.Info("using in-memory store with demo data", nil)
		return repo, func() {}, nil
	}

	repo, err := repository.NewMongoRepo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, nil, err
	}
	utils.Info("connected to MongoDB", map[string]any{"db": cfg.MongoDB})
	return repo, func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			utils.Warn("failed to close MongoDB client", map[string]any{"error": err.Error()})
		}
	}, nil
}
