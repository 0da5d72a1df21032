package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/bidding-wars/pkg/config"
	"github.com/chris/bidding-wars/pkg/logging"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/whop"
)

type worker struct {
	sender notify.Sender
	logger *slog.Logger
}

func newWorker() *worker {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.New(cfg.Logger.Level)
	return &worker{
		sender: whop.NewClient(cfg.Whop.BaseURL, cfg.Whop.APIKey, cfg.Whop.Timeout),
		logger: logger,
	}
}

// HandleRequest delivers queued notifications. Delivery is best effort: a failed send is
// retried by SQS, a malformed message is dropped.
func (w *worker) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var response events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		var n notify.Notification
		if err := json.Unmarshal([]byte(message.Body), &n); err != nil || n.UserId == "" {
			w.logger.Error("dropping malformed notification",
				slog.String("message_id", message.MessageId),
				slog.Any("error", err),
			)
			continue
		}

		if err := w.sender.SendNotification(ctx, n); err != nil {
			w.logger.Warn("failed to send notification",
				slog.String("message_id", message.MessageId),
				slog.String("kind", string(n.Kind)),
				slog.String("user_id", n.UserId),
				slog.Any("error", err),
			)
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
		}
	}
	return response, nil
}

func main() {
	lambda.Start(newWorker().HandleRequest)
}
