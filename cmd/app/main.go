package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/assets"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/bidding"
	"github.com/chris/bidding-wars/pkg/config"
	"github.com/chris/bidding-wars/pkg/handlers"
	"github.com/chris/bidding-wars/pkg/handlers/auctions"
	"github.com/chris/bidding-wars/pkg/handlers/barracks"
	"github.com/chris/bidding-wars/pkg/handlers/bids"
	"github.com/chris/bidding-wars/pkg/handlers/fulfillment"
	wshandlers "github.com/chris/bidding-wars/pkg/handlers/websockets"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/logging"
	"github.com/chris/bidding-wars/pkg/metrics"
	"github.com/chris/bidding-wars/pkg/middleware"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/scheduler"
	"github.com/chris/bidding-wars/pkg/settlement"
	dydbstore "github.com/chris/bidding-wars/pkg/storage/dynamodb"
	"github.com/chris/bidding-wars/pkg/websockets"
	"github.com/chris/bidding-wars/pkg/whop"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.New(cfg.Logger.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("unable to load SDK config", slog.Any("error", err))
		os.Exit(1)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Auctions:     cfg.DynamoDB.AuctionsTable,
		Bids:         cfg.DynamoDB.BidsTable,
		Barracks:     cfg.DynamoDB.BarracksTable,
		Fulfillments: cfg.DynamoDB.FulfillmentsTable,
		Settlements:  cfg.DynamoDB.SettlementsTable,
		Connections:  cfg.DynamoDB.ConnectionsTable,
	})

	sqsClient := sqs.NewFromConfig(awsCfg)
	var notifier notify.Dispatcher = &notify.NoOpDispatcher{}
	if cfg.SQS.NotificationQueueURL != "" {
		notifier = notify.NewSQSDispatcher(sqsClient, cfg.SQS.NotificationQueueURL)
	} else {
		logger.Warn("SQS_NOTIFICATION_QUEUE_URL not set, notifications are dropped")
	}
	var payouts scheduler.PayoutScheduler
	if cfg.SQS.PayoutQueueURL != "" {
		payouts = scheduler.NewSQSPayoutScheduler(sqsClient, cfg.SQS.PayoutQueueURL)
	} else {
		logger.Warn("SQS_PAYOUT_QUEUE_URL not set, payouts wait for the reconciliation job")
	}

	var signer assets.URLSigner
	if cfg.S3.Bucket != "" {
		s3Store, err := assets.New(ctx, assets.Options{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Expiry:          cfg.S3.URLExpiry,
		})
		if err != nil {
			logger.Error("failed to configure asset storage", slog.Any("error", err))
			os.Exit(1)
		}
		signer = s3Store
	}

	platform := whop.NewClient(cfg.Whop.BaseURL, cfg.Whop.APIKey, cfg.Whop.Timeout)
	resolver, err := auth.NewResolver(cfg.Whop.TokenPublicKey, cfg.Whop.AppID, platform)
	if err != nil {
		logger.Error("failed to configure token validation", slog.Any("error", err))
		os.Exit(1)
	}

	m := metrics.New("bidding_wars")
	machine := lifecycle.NewMachine(store, platform, signer, notifier, m, logger, lifecycle.FeeDefaults{
		CommunityFeePercent: cfg.Fees.CommunityFeePercent,
		PlatformFeePercent:  cfg.Fees.PlatformFeePercent,
	})
	validator := bidding.NewValidator(store, notifier, m, logger, cfg.Bidding.MaxAttempts)
	// Bid and close events go to API Gateway connections when deployed, or to the in-process hub.
	var feed websockets.Publisher
	var hub *websockets.Hub
	if cfg.WS.APIEndpoint != "" {
		publisher, err := websockets.NewAPIGatewayPublisher(ctx, store, cfg.WS.APIEndpoint, logger)
		if err != nil {
			logger.Error("failed to configure websocket publisher", slog.Any("error", err))
			os.Exit(1)
		}
		feed = publisher
	} else {
		hub = websockets.NewHub(logger)
		feed = hub
	}
	machine.Feed = feed
	validator.Feed = feed

	reconciler := settlement.NewReconciler(store, platform, payouts, notifier, m, logger)
	reconciler.LookupTimeout = cfg.Jobs.PaymentLookupLimit

	handler := handlers.NewApiHandler(
		auctions.NewAuctionsHandler(machine, logger),
		bids.NewBidsHandler(validator, logger),
		fulfillment.NewFulfillmentHandler(machine, logger),
		barracks.NewBarracksHandler(store, reconciler, logger),
	)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Handle("/metrics", m.Handler())
	router.Group(func(r chi.Router) {
		r.Use(middleware.Identity(resolver, logger))
		// Use the generated function to mount our handler on the router
		api.HandlerFromMux(handler, r)
		if hub != nil {
			live := wshandlers.NewLocalHandler(wshandlers.NewHandler(store, store, resolver, logger), hub)
			r.Get("/ws/auctions/{auctionId}", live.Watch)
		}
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down server", slog.Any("error", err))
		}
	}()

	logger.Info("starting server", slog.String("port", cfg.HTTP.Port), slog.String("env", cfg.Env))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
