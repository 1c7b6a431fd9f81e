package services

import (
	"context"
	"testing"

	"wishlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type captureNotifier struct {
	userIDs   []string
	snapshots [][]models.Activity
}

func (n *captureNotifier) NotifyActivity(userID string, snapshot []models.Activity) {
	n.userIDs = append(n.userIDs, userID)
	n.snapshots = append(n.snapshots, snapshot)
}

func TestLogActivityStampsAndPushes(t *testing.T) {
	stub := &stubDynamoClient{}
	feed := []models.Activity{{UserID: "u2", CreatedAt: "2026-01-01T00:00:00Z", Type: models.ActivityTypeFriendAdded}}
	stub.queryFunc = func(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		items := make([]map[string]types.AttributeValue, 0, len(feed))
		for _, a := range feed {
			items = append(items, mustMarshal(t, a))
		}
		return &dynamodb.QueryOutput{Items: items}, nil
	}
	notifier := &captureNotifier{}
	svc := &ActivityService{Dynamo: &DynamoService{Client: stub}, Notifier: notifier}

	err := svc.LogActivity(context.Background(), models.Activity{
		UserID:  "u2",
		Type:    models.ActivityTypeFriendAdded,
		Message: "Alice added you as a friend",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	puts := stub.putsToTable(models.Activity{}.TableName())
	if len(puts) != 1 {
		t.Fatalf("expected 1 activity put, got %d", len(puts))
	}
	var written models.Activity
	if err := attributevalue.UnmarshalMap(puts[0].Item, &written); err != nil {
		t.Fatalf("failed to unmarshal activity: %v", err)
	}
	if written.ActivityID == "" || written.CreatedAt == "" {
		t.Errorf("activity must be stamped with id and timestamp, got %+v", written)
	}

	// Push carries the whole feed snapshot, not a diff
	if len(notifier.userIDs) != 1 || notifier.userIDs[0] != "u2" {
		t.Fatalf("expected one push to u2, got %v", notifier.userIDs)
	}
	if len(notifier.snapshots[0]) != len(feed) {
		t.Errorf("push should carry the full snapshot, got %d records", len(notifier.snapshots[0]))
	}
}

func TestClearActivityDeletesByCompositeKey(t *testing.T) {
	stub := &stubDynamoClient{}
	svc := &ActivityService{Dynamo: &DynamoService{Client: stub}}

	if err := svc.ClearActivity(context.Background(), "u2", "2026-01-01T00:00:00Z"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stub.deleteInputs) != 1 {
		t.Fatalf("expected 1 delete, got %d", len(stub.deleteInputs))
	}
	key := stub.deleteInputs[0].Key
	if keyString(key, "userId") != "u2" || keyString(key, "createdAt") != "2026-01-01T00:00:00Z" {
		t.Errorf("delete key = %v, want userId+createdAt", key)
	}
}

func TestLogActivitiesEmptyIsNoop(t *testing.T) {
	stub := &stubDynamoClient{}
	svc := &ActivityService{Dynamo: &DynamoService{Client: stub}}

	if err := svc.LogActivities(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.batchInputs) != 0 {
		t.Fatal("empty fan-out must not hit the store")
	}
}
