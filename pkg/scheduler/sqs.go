package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// maxDelay is the longest delivery delay SQS supports.
const maxDelay = 15 * time.Minute

// SQSAPI is the subset of the SQS client used to enqueue work.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSQueue sends JSON messages to a single queue.
type SQSQueue struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSQueue creates a new SQSQueue.
func NewSQSQueue(client SQSAPI, queueURL string) *SQSQueue {
	return &SQSQueue{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Enqueue marshals payload to JSON and sends it, delayed by up to 15 minutes.
func (q *SQSQueue) Enqueue(ctx context.Context, payload any, delay time.Duration) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message for SQS: %w", err)
	}

	if delay > maxDelay {
		delay = maxDelay
	}
	if delay < 0 {
		delay = 0
	}

	_, err = q.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(q.QueueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: int32(delay / time.Second),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}

// SQSPayoutScheduler implements the PayoutScheduler interface using AWS SQS.
type SQSPayoutScheduler struct {
	Queue *SQSQueue
	Now   func() time.Time
}

// NewSQSPayoutScheduler creates a new SQSPayoutScheduler.
func NewSQSPayoutScheduler(client SQSAPI, queueURL string) *SQSPayoutScheduler {
	return &SQSPayoutScheduler{
		Queue: NewSQSQueue(client, queueURL),
		Now:   time.Now,
	}
}

// Make sure we conform to the interface
var _ PayoutScheduler = (*SQSPayoutScheduler)(nil)

// SchedulePayout sends a payout job to the payout queue.
func (s *SQSPayoutScheduler) SchedulePayout(ctx context.Context, auctionID string, delay time.Duration) error {
	job := PayoutJob{AuctionId: auctionID, EnqueuedAt: s.Now().UTC()}
	if err := s.Queue.Enqueue(ctx, job, delay); err != nil {
		return fmt.Errorf("failed to schedule payout for auction %s: %w", auctionID, err)
	}
	return nil
}
