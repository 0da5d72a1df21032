package storage

import "context"

// ConnectionStore tracks the websocket connections watching each auction.
type ConnectionStore interface {
	AddConnection(ctx context.Context, connectionID, auctionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	ListConnections(ctx context.Context, auctionID string) ([]string, error)
}
