package storage

//go:generate mockery --name Storage --output ./mocks --outpkg mocks
//go:generate mockery --name ConnectionStore --output ./mocks --outpkg mocks

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (ApiStore, SettlementStore, etc.) instead of this one.
type Storage interface {
	ApiStore
	SettlementStore
}

// ApiStore defines the complete set of non-privileged operations needed by the API
// and the lifecycle state machine.
type ApiStore interface {
	AuctionStore
	BidStore
	PurchaseStore
	FulfillmentStore
}

// BiddingStore is the slice of the data layer the bid validator needs.
type BiddingStore interface {
	AuctionReader
	BidStore
}
