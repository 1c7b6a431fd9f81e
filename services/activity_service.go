package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wishlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ActivityNotifier pushes a full snapshot of a user's activity feed to any
// live subscriber. The socket layer implements it; a nil notifier disables
// push entirely.
type ActivityNotifier interface {
	NotifyActivity(userID string, snapshot []models.Activity)
}

// ActivityService owns the per-user notification feed
type ActivityService struct {
	Dynamo   *DynamoService
	Notifier ActivityNotifier
}

// LogActivity writes one activity record addressed to activity.UserID.
// Activity writes are best-effort side effects of social operations: the
// caller logs failures but never rolls back the primary write.
func (s *ActivityService) LogActivity(ctx context.Context, activity models.Activity) error {
	s.stamp(&activity)

	if err := s.Dynamo.PutItem(ctx, models.Activity{}.TableName(), activity); err != nil {
		return err
	}

	s.pushSnapshot(ctx, activity.UserID)
	return nil
}

// LogActivities fans out a batch of records, one per target user
func (s *ActivityService) LogActivities(ctx context.Context, activities []models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(activities))
	targets := make(map[string]struct{})
	for i := range activities {
		s.stamp(&activities[i])
		item, err := attributevalue.MarshalMap(activities[i])
		if err != nil {
			return fmt.Errorf("failed to marshal activity: %w", err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
		targets[activities[i].UserID] = struct{}{}
	}

	if err := s.Dynamo.BatchWriteItems(ctx, models.Activity{}.TableName(), writeRequests); err != nil {
		return err
	}

	for userID := range targets {
		s.pushSnapshot(ctx, userID)
	}
	return nil
}

// GetActivitiesForUser returns the target user's feed, newest first
func (s *ActivityService) GetActivitiesForUser(ctx context.Context, userID string) ([]models.Activity, error) {
	items, err := s.Dynamo.QueryItemsWithOptions(
		ctx,
		models.Activity{}.TableName(),
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		100,
		true,
	)
	if err != nil {
		return nil, err
	}

	var activities []models.Activity
	if err := attributevalue.UnmarshalListOfMaps(items, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// ClearActivity dismisses a single record from the target user's feed
func (s *ActivityService) ClearActivity(ctx context.Context, userID, createdAt string) error {
	key := map[string]types.AttributeValue{
		"userId":    &types.AttributeValueMemberS{Value: userID},
		"createdAt": &types.AttributeValueMemberS{Value: createdAt},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.Activity{}.TableName(), key); err != nil {
		return err
	}

	s.pushSnapshot(ctx, userID)
	return nil
}

func (s *ActivityService) stamp(activity *models.Activity) {
	if activity.ActivityID == "" {
		activity.ActivityID = uuid.New().String()
	}
	if activity.CreatedAt == "" {
		activity.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
}

// pushSnapshot re-reads the target's feed and hands the whole thing to the
// notifier. Subscribers replace local state wholesale, so a stale or dropped
// push is self-correcting on the next one.
func (s *ActivityService) pushSnapshot(ctx context.Context, userID string) {
	if s.Notifier == nil {
		return
	}
	snapshot, err := s.GetActivitiesForUser(ctx, userID)
	if err != nil {
		log.Printf("Failed to load activity snapshot for user %s: %v", userID, err)
		return
	}
	s.Notifier.NotifyActivity(userID, snapshot)
}
