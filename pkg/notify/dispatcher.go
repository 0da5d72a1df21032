package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/bidding-wars/pkg/scheduler"
)

//go:generate mockery --name Dispatcher --output ./mocks --outpkg mocks
//go:generate mockery --name Sender --output ./mocks --outpkg mocks

// Dispatcher queues notifications for delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// Sender delivers a notification to the user.
type Sender interface {
	SendNotification(ctx context.Context, n Notification) error
}

// SQSDispatcher implements the Dispatcher interface using an SQS queue drained by the notification worker.
type SQSDispatcher struct {
	Queue *scheduler.SQSQueue
}

// NewSQSDispatcher creates a new SQSDispatcher.
func NewSQSDispatcher(client scheduler.SQSAPI, queueURL string) *SQSDispatcher {
	return &SQSDispatcher{Queue: scheduler.NewSQSQueue(client, queueURL)}
}

// Make sure we conform to the interface
var _ Dispatcher = (*SQSDispatcher)(nil)

func (d *SQSDispatcher) Dispatch(ctx context.Context, n Notification) error {
	if err := d.Queue.Enqueue(ctx, n, 0); err != nil {
		return fmt.Errorf("failed to dispatch %s notification: %w", n.Kind, err)
	}
	return nil
}

// NoOpDispatcher drops every notification.
type NoOpDispatcher struct{}

// Dispatch does nothing.
func (d *NoOpDispatcher) Dispatch(ctx context.Context, n Notification) error {
	return nil
}

// emitTimeout bounds a single dispatch so it never holds up the caller for long.
const emitTimeout = 3 * time.Second

// Emit dispatches n and only logs a failure. Core operations call it after their writes succeed.
func Emit(ctx context.Context, d Dispatcher, logger *slog.Logger, n Notification) {
	if d == nil || n.UserId == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
	defer cancel()

	if err := d.Dispatch(ctx, n); err != nil {
		logger.Error("failed to emit notification",
			slog.String("kind", string(n.Kind)),
			slog.String("auction_id", n.AuctionId),
			slog.String("user_id", n.UserId),
			slog.Any("error", err),
		)
	}
}
