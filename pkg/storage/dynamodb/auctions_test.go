package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/storage"
	"github.com/chris/bidding-wars/pkg/storage/dynamodb/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuction() *models.Auction {
	return &models.Auction{
		Id:                uuid.New().String(),
		CommunityId:       "exp_1",
		CreatorId:         "seller",
		Title:             "Signed jersey",
		StartPriceCents:   1000,
		MinIncrementCents: 100,
		Status:            models.LIVE,
		EndsAt:            time.Now().UTC().Add(time.Hour),
		Version:           3,
	}
}

func TestGetAuction(t *testing.T) {
	auction := testAuction()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions"}

		av, _ := attributevalue.MarshalMap(auction)
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "auctions" && *in.ConsistentRead
		})).Return(&dynamodb.GetItemOutput{Item: av}, nil).Once()

		got, err := store.GetAuction(context.Background(), auction.Id)

		assert.NoError(t, err)
		assert.Equal(t, auction.Id, got.Id)
		assert.Equal(t, int64(3), got.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		_, err := store.GetAuction(context.Background(), auction.Id)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Read Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

		_, err := store.GetAuction(context.Background(), auction.Id)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get auction from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestCreateAuction(t *testing.T) {
	t.Run("Starts At Version One", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions"}
		auction := testAuction()
		auction.Version = 0

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		err := store.CreateAuction(context.Background(), auction)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), auction.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Id", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions"}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.CreateAuction(context.Background(), testAuction())

		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
		mockClient.AssertExpectations(t)
	})
}

func TestUpdateAuction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions"}
		auction := testAuction()

		// The condition must carry the version the caller read, the item the next one.
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			expected := in.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value
			stored := in.Item["version"].(*types.AttributeValueMemberN).Value
			return expected == "3" && stored == "4"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		err := store.UpdateAuction(context.Background(), auction)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), auction.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent Update", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AuctionsTableName: "auctions"}
		auction := testAuction()

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.UpdateAuction(context.Background(), auction)

		assert.ErrorIs(t, err, storage.ErrConcurrentUpdate)
		assert.Equal(t, int64(3), auction.Version)
		mockClient.AssertExpectations(t)
	})
}

func TestListAuctionsAwaitingCharge(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, AuctionsTableName: "auctions"}

	first, second, third := testAuction(), testAuction(), testAuction()
	page1 := marshalAuctions(t, first)
	page2 := marshalAuctions(t, second, third)
	lastKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: first.Id}}

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.ExclusiveStartKey == nil
	})).Return(&dynamodb.QueryOutput{Items: page1, LastEvaluatedKey: lastKey}, nil).Once()
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.ExclusiveStartKey != nil
	})).Return(&dynamodb.QueryOutput{Items: page2}, nil).Once()

	auctions, err := store.ListAuctionsAwaitingCharge(context.Background(), 2)

	assert.NoError(t, err)
	require.Len(t, auctions, 2)
	assert.Equal(t, first.Id, auctions[0].Id)
	assert.Equal(t, second.Id, auctions[1].Id)
	mockClient.AssertExpectations(t)
}

func marshalAuctions(t *testing.T, auctions ...*models.Auction) []map[string]types.AttributeValue {
	t.Helper()
	var items []map[string]types.AttributeValue
	for _, a := range auctions {
		av, err := attributevalue.MarshalMap(a)
		require.NoError(t, err)
		items = append(items, av)
	}
	return items
}
