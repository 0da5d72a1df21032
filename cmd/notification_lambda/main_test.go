package main

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/bidding-wars/pkg/notify"
	notify_mocks "github.com/chris/bidding-wars/pkg/notify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleRequest(t *testing.T) {
	// 1. Setup
	mockSender := notify_mocks.NewSender(t)
	w := &worker{sender: mockSender, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	mockSender.On("SendNotification", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
		return n.UserId == "alice"
	})).Return(nil).Once()
	mockSender.On("SendNotification", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool {
		return n.UserId == "bob"
	})).Return(errors.New("429 too many requests")).Once()

	event := events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "m1", Body: `{"kind":"outbid","user_id":"alice","auction_id":"auction-1","title":"You were outbid"}`},
		{MessageId: "m2", Body: `{"kind":"auctionWon","user_id":"bob","auction_id":"auction-1","title":"You won"}`},
		{MessageId: "m3", Body: `{"kind":"outbid"}`},
	}}

	// 2. Execute
	response, err := w.HandleRequest(t.Context(), event)

	// 3. Assert
	require.NoError(t, err)
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "m2"}}, response.BatchItemFailures)
}
