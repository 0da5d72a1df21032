package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/storage"
	"github.com/chris/bidding-wars/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testFulfillment(version int64) *models.Fulfillment {
	return &models.Fulfillment{
		AuctionId: "auction-1",
		Kind:      models.PHYSICAL,
		Version:   version,
		UpdatedAt: time.Now().UTC(),
	}
}

func TestSaveFulfillment(t *testing.T) {
	t.Run("First Save Creates", func(t *testing.T) {
		// 1. Setup
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, FulfillmentsTableName: "fulfillments"}
		f := testFulfillment(0)

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.TableName == "fulfillments" &&
				*in.ConditionExpression == "attribute_not_exists(auction_id)" &&
				versionOf(in.Item) == "1"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		// 2. Execute
		err := store.SaveFulfillment(context.Background(), f)

		// 3. Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(1), f.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Later Saves Guard Version", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, FulfillmentsTableName: "fulfillments"}
		f := testFulfillment(2)
		f.SellerMarkedShipped = true

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.ConditionExpression == "version = :version" &&
				in.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value == "2" &&
				versionOf(in.Item) == "3"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		err := store.SaveFulfillment(context.Background(), f)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), f.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent Update", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, FulfillmentsTableName: "fulfillments"}
		f := testFulfillment(0)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.SaveFulfillment(context.Background(), f)

		assert.ErrorIs(t, err, storage.ErrConcurrentUpdate)
		assert.Equal(t, int64(0), f.Version)
		mockClient.AssertExpectations(t)
	})
}

func TestCompleteFulfillment(t *testing.T) {
	t.Run("Writes Three Records Together", func(t *testing.T) {
		// 1. Setup
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions", BarracksTableName: "barracks", FulfillmentsTableName: "fulfillments"}
		f := testFulfillment(2)
		auction := testAuction()
		auction.Status = models.FULFILLED
		item := testBarracksItem()
		item.Status = models.BarracksFulfilled
		item.Version = 5

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 3 {
				return false
			}
			fulfillmentPut := in.TransactItems[0].Put
			auctionPut := in.TransactItems[1].Put
			itemPut := in.TransactItems[2].Put
			return *fulfillmentPut.TableName == "fulfillments" &&
				fulfillmentPut.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value == "2" &&
				*auctionPut.TableName == "auctions" &&
				*auctionPut.ConditionExpression == "version = :version" &&
				auctionPut.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value == "3" &&
				*itemPut.TableName == "barracks" &&
				*itemPut.ConditionExpression == "version = :version" &&
				itemPut.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value == "5"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		// 2. Execute
		err := store.CompleteFulfillment(context.Background(), f, auction, item)

		// 3. Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(3), f.Version)
		assert.Equal(t, int64(4), auction.Version)
		assert.Equal(t, int64(6), item.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("First Write Creates Fulfillment", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions", BarracksTableName: "barracks", FulfillmentsTableName: "fulfillments"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			return *in.TransactItems[0].Put.ConditionExpression == "attribute_not_exists(auction_id)"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		err := store.CompleteFulfillment(context.Background(), testFulfillment(0), testAuction(), testBarracksItem())

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent Update Leaves Versions", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions", BarracksTableName: "barracks", FulfillmentsTableName: "fulfillments"}
		f := testFulfillment(2)
		auction := testAuction()
		item := testBarracksItem()
		item.Version = 5

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionCancelled()).Once()

		err := store.CompleteFulfillment(context.Background(), f, auction, item)

		assert.ErrorIs(t, err, storage.ErrConcurrentUpdate)
		assert.Equal(t, int64(2), f.Version)
		assert.Equal(t, int64(3), auction.Version)
		assert.Equal(t, int64(5), item.Version)
		mockClient.AssertExpectations(t)
	})
}
