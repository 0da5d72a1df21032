package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

type fakeEnder struct {
	endErr     error
	endCalls   int
	chargeCall int
	limits     []int32
}

func (f *fakeEnder) EndDue(ctx context.Context, limit int32) (*lifecycle.BatchResult, error) {
	f.endCalls++
	f.limits = append(f.limits, limit)
	if f.endErr != nil {
		return &lifecycle.BatchResult{Failed: 1}, f.endErr
	}
	return &lifecycle.BatchResult{Processed: 2}, nil
}

func (f *fakeEnder) ChargeWinners(ctx context.Context, limit int32) (*lifecycle.BatchResult, error) {
	f.chargeCall++
	f.limits = append(f.limits, limit)
	return &lifecycle.BatchResult{Processed: 1}, nil
}

func TestHandleRequest(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Ends Then Charges", func(t *testing.T) {
		fake := &fakeEnder{}
		j := &job{auctions: fake, batchSize: 25, logger: logger}

		err := j.HandleRequest(t.Context())

		assert.NoError(t, err)
		assert.Equal(t, 1, fake.endCalls)
		assert.Equal(t, 1, fake.chargeCall)
		assert.Equal(t, []int32{25, 25}, fake.limits)
	})

	t.Run("Failures Do Not Stop Charging", func(t *testing.T) {
		fake := &fakeEnder{endErr: errors.New("auction-1: concurrent update")}
		j := &job{auctions: fake, batchSize: 25, logger: logger}

		err := j.HandleRequest(t.Context())

		assert.NoError(t, err)
		assert.Equal(t, 1, fake.chargeCall)
	})
}
