package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/config"
	wshandlers "github.com/chris/bidding-wars/pkg/handlers/websockets"
	"github.com/chris/bidding-wars/pkg/logging"
	dydbstore "github.com/chris/bidding-wars/pkg/storage/dynamodb"
	"github.com/chris/bidding-wars/pkg/whop"
)

// Serves the $connect, $disconnect and $default routes of the live auction feed API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.New(cfg.Logger.Level)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("unable to load SDK config", slog.Any("error", err))
		os.Exit(1)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Auctions:    cfg.DynamoDB.AuctionsTable,
		Connections: cfg.DynamoDB.ConnectionsTable,
	})

	platform := whop.NewClient(cfg.Whop.BaseURL, cfg.Whop.APIKey, cfg.Whop.Timeout)
	resolver, err := auth.NewResolver(cfg.Whop.TokenPublicKey, cfg.Whop.AppID, platform)
	if err != nil {
		logger.Error("failed to configure token validation", slog.Any("error", err))
		os.Exit(1)
	}

	h := wshandlers.NewHandler(store, store, resolver, logger)
	lambda.Start(h.Route)
}
