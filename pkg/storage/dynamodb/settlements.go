package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/bidding-wars/pkg/models"
	"github.com/chris/bidding-wars/pkg/storage"
)

const payoutStatusGSI = "payout_status-updated_at-index"

// GetSettlement retrieves the settlement record for an auction.
func (s *Store) GetSettlement(ctx context.Context, auctionID string) (*models.Settlement, error) {
	var settlement models.Settlement
	found, err := s.getItem(ctx, s.SettlementsTableName, "auction_id", auctionID, &settlement)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement from DynamoDB: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("settlement for auction %s: %w", auctionID, storage.ErrNotFound)
	}
	return &settlement, nil
}

// ConfirmPayment performs the atomic PENDING_PAYMENT -> PAID move.
// Every write is conditioned on the pending state, so a second confirmation of the same
// purchase changes nothing and reports ErrAlreadyProcessed.
func (s *Store) ConfirmPayment(ctx context.Context, auction *models.Auction, item *models.BarracksItem, settlement *models.Settlement) error {
	if item.PaidAt == nil {
		return fmt.Errorf("barracks item %s has no paid_at timestamp", item.Id)
	}

	now := time.Now().UTC()
	nowAV, err := marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for payment confirmation: %w", err)
	}
	paidAtAV, err := marshal(*item.PaidAt)
	if err != nil {
		return fmt.Errorf("failed to marshal paid_at: %w", err)
	}
	settlementAV, err := marshalMap(settlement)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Mark the ownership record paid.
				Update: &types.Update{
					TableName: aws.String(s.BarracksTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: item.Id},
					},
					UpdateExpression:    aws.String("SET #status = :paid, paid_at = :paid_at, payment_id = :payment_id, updated_at = :now, version = version + :inc"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":       &types.AttributeValueMemberS{Value: string(models.BarracksPaid)},
						":pending":    &types.AttributeValueMemberS{Value: string(models.BarracksPendingPayment)},
						":paid_at":    paidAtAV,
						":payment_id": &types.AttributeValueMemberS{Value: item.PaymentId},
						":now":        nowAV,
						":inc":        numberAV(1),
					},
				},
			},
			{
				// Operation 2: Mark the auction paid.
				Update: &types.Update{
					TableName: aws.String(s.AuctionsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: auction.Id},
					},
					UpdateExpression:    aws.String("SET #status = :paid, payout_status = :payout_pending, updated_at = :now, version = version + :inc"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":           &types.AttributeValueMemberS{Value: string(models.PAID)},
						":pending":        &types.AttributeValueMemberS{Value: string(models.PENDING_PAYMENT)},
						":payout_pending": &types.AttributeValueMemberS{Value: string(models.PayoutPending)},
						":now":            nowAV,
						":inc":            numberAV(1),
					},
				},
			},
			{
				// Operation 3: Create the settlement record. At most one per auction.
				Put: createPut(s.SettlementsTableName, "auction_id", settlementAV),
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if isConditionFailure(err) {
			return storage.ErrAlreadyProcessed
		}
		return fmt.Errorf("failed to execute payment confirmation transaction: %w", err)
	}

	return nil
}

// CreateSettlement stores a settlement record on its own. Reconciliation uses it to finish a
// confirmation whose ownership record is already PAID but whose settlement is missing.
func (s *Store) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	av, err := marshalMap(settlement)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement: %w", err)
	}

	if err := s.putItem(ctx, createPut(s.SettlementsTableName, "auction_id", av)); err != nil {
		if isConditionFailure(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create settlement: %w", err)
	}
	return nil
}

// SavePayoutPlan stores the legs computed by the first payout run. Later runs reuse them.
func (s *Store) SavePayoutPlan(ctx context.Context, settlement *models.Settlement) error {
	legsAV, err := marshal(settlement.Legs)
	if err != nil {
		return fmt.Errorf("failed to marshal payout legs: %w", err)
	}
	nowAV, err := marshal(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.SettlementsTableName),
		Key: map[string]types.AttributeValue{
			"auction_id": &types.AttributeValueMemberS{Value: settlement.AuctionId},
		},
		UpdateExpression:    aws.String("SET legs = :legs, platform_fee_cents = :platform_fee, transfer_fee_cents = :transfer_fee, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(auction_id) AND attribute_not_exists(legs)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":legs":         legsAV,
			":platform_fee": numberAV(settlement.PlatformFeeCents),
			":transfer_fee": numberAV(settlement.TransferFeeCents),
			":now":          nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		if isConditionFailure(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to save payout plan: %w", err)
	}
	return nil
}

// SavePayoutLeg overwrites one entry of the settlement's legs map.
func (s *Store) SavePayoutLeg(ctx context.Context, auctionID string, leg *models.PayoutLeg) error {
	legAV, err := marshal(leg)
	if err != nil {
		return fmt.Errorf("failed to marshal payout leg: %w", err)
	}
	nowAV, err := marshal(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.SettlementsTableName),
		Key: map[string]types.AttributeValue{
			"auction_id": &types.AttributeValueMemberS{Value: auctionID},
		},
		UpdateExpression:    aws.String("SET legs.#role = :leg, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(legs)"),
		ExpressionAttributeNames: map[string]string{
			"#role": string(leg.Role),
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":leg": legAV,
			":now": nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to save %s payout leg for auction %s: %w", leg.Role, auctionID, err)
	}
	return nil
}

// FinishPayout records the overall payout outcome on both the settlement and the auction.
func (s *Store) FinishPayout(ctx context.Context, settlement *models.Settlement) error {
	var sellerPaid, communityPaid int64
	var failureReason string
	for role, leg := range settlement.Legs {
		if leg.Status == models.LegSucceeded {
			switch role {
			case models.RoleSeller:
				sellerPaid = leg.AmountCents
			case models.RoleCommunityOwner:
				communityPaid = leg.AmountCents
			}
		}
		if leg.Status == models.LegFailed && failureReason == "" {
			failureReason = fmt.Sprintf("%s: %s", role, leg.FailureReason)
		}
	}

	nowAV, err := marshal(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	statusAV := &types.AttributeValueMemberS{Value: string(settlement.PayoutStatus)}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.SettlementsTableName),
					Key: map[string]types.AttributeValue{
						"auction_id": &types.AttributeValueMemberS{Value: settlement.AuctionId},
					},
					UpdateExpression: aws.String("SET payout_status = :status, updated_at = :now"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status": statusAV,
						":now":    nowAV,
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(s.AuctionsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: settlement.AuctionId},
					},
					UpdateExpression: aws.String("SET payout_status = :status, seller_paid_cents = :seller_paid, community_owner_paid_cents = :community_paid, payout_failure_reason = :reason, updated_at = :now, version = version + :inc"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status":         statusAV,
						":seller_paid":    numberAV(sellerPaid),
						":community_paid": numberAV(communityPaid),
						":reason":         &types.AttributeValueMemberS{Value: failureReason},
						":now":            nowAV,
						":inc":            numberAV(1),
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return fmt.Errorf("failed to execute payout status transaction: %w", err)
	}
	return nil
}

// ListStalledPayouts finds settlements whose payout never reached COMPLETED.
func (s *Store) ListStalledPayouts(ctx context.Context, maxAge time.Duration, limit int32) ([]models.Settlement, error) {
	cutoff := formatTime(time.Now().Add(-maxAge))

	var stalled []models.Settlement
	for _, status := range []models.PayoutStatus{models.PayoutPending, models.PayoutFailed} {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.SettlementsTableName),
			IndexName:              aws.String(payoutStatusGSI),
			KeyConditionExpression: aws.String("payout_status = :status AND updated_at < :cutoff"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
				":cutoff": &types.AttributeValueMemberS{Value: cutoff},
			},
			Limit: aws.Int32(limit),
		}

		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query for stalled payouts: %w", err)
		}

		var settlements []models.Settlement
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &settlements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stalled payouts: %w", err)
		}
		stalled = append(stalled, settlements...)
	}

	return stalled, nil
}
