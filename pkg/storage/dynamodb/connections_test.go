package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConnections(t *testing.T) {
	t.Run("Add Sets Expiry", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			_, hasTTL := in.Item["expires_at"]
			return *in.TableName == "connections" && hasTTL &&
				in.Item["auction_id"].(*types.AttributeValueMemberS).Value == "auction-1"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		assert.NoError(t, store.AddConnection(context.Background(), "conn-1", "auction-1"))
		mockClient.AssertExpectations(t)
	})

	t.Run("Remove", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

		err := store.RemoveConnection(context.Background(), "conn-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete connection conn-1")
		mockClient.AssertExpectations(t)
	})

	t.Run("List Follows Pages", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		item := func(id string) map[string]types.AttributeValue {
			return map[string]types.AttributeValue{"connection_id": &types.AttributeValueMemberS{Value: id}}
		}
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.ExclusiveStartKey == nil
		})).Return(&dynamodb.QueryOutput{
			Items:            []map[string]types.AttributeValue{item("c1")},
			LastEvaluatedKey: item("c1"),
		}, nil).Once()
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.ExclusiveStartKey != nil
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item("c2")}}, nil).Once()

		ids, err := store.ListConnections(context.Background(), "auction-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"c1", "c2"}, ids)
		mockClient.AssertExpectations(t)
	})
}
