package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/bidding-wars/pkg/config"
	"github.com/chris/bidding-wars/pkg/logging"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/scheduler"
	"github.com/chris/bidding-wars/pkg/settlement"
	dydbstore "github.com/chris/bidding-wars/pkg/storage/dynamodb"
	"github.com/chris/bidding-wars/pkg/whop"
)

type payoutRunner interface {
	Execute(ctx context.Context, auctionID string) (*models.Settlement, error)
}

// worker drains the payout queue.
type worker struct {
	payouts payoutRunner
	logger  *slog.Logger
}

// newWorker wires the dependencies once per cold start.
func newWorker() *worker {
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
		Auctions:     cfg.DynamoDB.AuctionsTable,
		Bids:         cfg.DynamoDB.BidsTable,
		Barracks:     cfg.DynamoDB.BarracksTable,
		Fulfillments: cfg.DynamoDB.FulfillmentsTable,
		Settlements:  cfg.DynamoDB.SettlementsTable,
		Connections:  cfg.DynamoDB.ConnectionsTable,
	})
	platform := whop.NewClient(cfg.Whop.BaseURL, cfg.Whop.APIKey, cfg.Whop.Timeout)

	return &worker{
		payouts: settlement.NewPayoutExecutor(store, platform, nil, logger),
		logger:  logger,
	}
}

// HandleRequest runs the payout of every auction in the batch. A message whose payout
// did not complete is reported back so SQS redelivers it.
func (w *worker) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var response events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		var job scheduler.PayoutJob
		if err := json.Unmarshal([]byte(message.Body), &job); err != nil || job.AuctionId == "" {
			// Redelivery cannot fix a malformed body.
			w.logger.Error("dropping malformed payout job",
				slog.String("message_id", message.MessageId),
				slog.Any("error", err),
			)
			continue
		}

		s, err := w.payouts.Execute(ctx, job.AuctionId)
		if err != nil {
			w.logger.Error("payout failed",
				slog.String("message_id", message.MessageId),
				slog.String("auction_id", job.AuctionId),
				slog.Any("error", err),
			)
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}

		w.logger.Info("payout processed",
			slog.String("auction_id", job.AuctionId),
			slog.String("payout_status", string(s.PayoutStatus)),
		)
	}
	return response, nil
}

func main() {
	lambda.Start(newWorker().HandleRequest)
}
