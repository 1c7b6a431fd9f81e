package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"wishlink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func newTestListService(stub *stubDynamoClient) *ListService {
	dynamo := &DynamoService{Client: stub}
	codes := &CodeService{Dynamo: dynamo}
	profiles := &UserProfileService{Dynamo: dynamo, Codes: codes}
	activity := &ActivityService{Dynamo: dynamo}
	return &ListService{Dynamo: dynamo, Codes: codes, Profiles: profiles, Activity: activity}
}

// stubUsers serves GetItem for the Users table from a fixed set of profiles
func stubUsers(t *testing.T, stub *stubDynamoClient, profiles ...models.UserProfile) {
	t.Helper()
	items := map[string]models.UserProfile{}
	for _, p := range profiles {
		items[p.UserID] = p
	}
	stub.getFunc = func(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		if *input.TableName != (models.UserProfile{}).TableName() {
			return &dynamodb.GetItemOutput{}, nil
		}
		uid := keyString(input.Key, "userId")
		profile, ok := items[uid]
		if !ok {
			return &dynamodb.GetItemOutput{}, nil
		}
		return &dynamodb.GetItemOutput{Item: mustMarshal(t, profile)}, nil
	}
}

func TestCreateListMembersAndInviteCode(t *testing.T) {
	stub := &stubDynamoClient{}
	stubUsers(t, stub, models.UserProfile{UserID: "u1", FirstName: "Alice"})
	svc := newTestListService(stub)

	list, err := svc.CreateList(context.Background(), "u1", "Trip", []string{"u2", "u2", "u1"}, "travel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if list.Owner != "u1" {
		t.Errorf("owner = %s, want u1", list.Owner)
	}
	if len(list.Members) != 2 || !list.HasMember("u1") || !list.HasMember("u2") {
		t.Errorf("members = %v, want exactly {u1, u2}", list.Members)
	}
	if list.Category != "travel" {
		t.Errorf("category = %s, want travel", list.Category)
	}
	if !regexp.MustCompile(`^\d{5}$`).MatchString(list.InviteCode) {
		t.Errorf("invite code %q is not a 5-digit string", list.InviteCode)
	}
	if list.Classification() != models.ListClassPaired {
		t.Errorf("classification = %s, want paired", list.Classification())
	}

	// Exactly one list_invite activity, addressed to the other member
	if len(stub.batchInputs) != 1 {
		t.Fatalf("expected 1 activity batch, got %d", len(stub.batchInputs))
	}
	requests := stub.batchInputs[0].RequestItems[models.Activity{}.TableName()]
	if len(requests) != 1 {
		t.Fatalf("expected 1 list_invite activity, got %d", len(requests))
	}
	var activity models.Activity
	if err := attributevalue.UnmarshalMap(requests[0].PutRequest.Item, &activity); err != nil {
		t.Fatalf("failed to unmarshal activity: %v", err)
	}
	if activity.UserID != "u2" {
		t.Errorf("activity target = %s, want u2", activity.UserID)
	}
	if activity.Type != models.ActivityTypeListInvite {
		t.Errorf("activity type = %s, want %s", activity.Type, models.ActivityTypeListInvite)
	}
	if !strings.Contains(activity.Message, "Alice") || !strings.Contains(activity.Message, "Trip") {
		t.Errorf("activity message %q should carry the inviter name and list title", activity.Message)
	}
}

func TestCreateListEmptyTitleDefaultsToUntitled(t *testing.T) {
	stub := &stubDynamoClient{}
	stubUsers(t, stub, models.UserProfile{UserID: "u1", FirstName: "Alice"})
	svc := newTestListService(stub)

	list, err := svc.CreateList(context.Background(), "u1", "  ", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Title != models.DefaultListTitle {
		t.Errorf("title = %q, want %q", list.Title, models.DefaultListTitle)
	}
	if list.Classification() != models.ListClassPersonal {
		t.Errorf("solo list classification = %s, want personal", list.Classification())
	}
	if len(stub.batchInputs) != 0 {
		t.Errorf("no invite activities expected for a solo list")
	}
}

// stubList serves GetItem for the Lists table
func stubList(t *testing.T, stub *stubDynamoClient, list models.List) {
	t.Helper()
	stub.getFunc = func(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		switch *input.TableName {
		case (models.List{}).TableName():
			if keyString(input.Key, "listId") == list.ListID {
				return &dynamodb.GetItemOutput{Item: mustMarshal(t, list)}, nil
			}
		case (models.UserProfile{}).TableName():
			uid := keyString(input.Key, "userId")
			return &dynamodb.GetItemOutput{Item: mustMarshal(t, models.UserProfile{UserID: uid, FirstName: "User " + uid})}, nil
		}
		return &dynamodb.GetItemOutput{}, nil
	}
}

func TestOwnerOnlyOperations(t *testing.T) {
	list := models.List{
		ListID:     "L1",
		Title:      "Trip",
		Owner:      "u1",
		Members:    []string{"u1", "u2"},
		InviteCode: "12345",
	}

	tests := []struct {
		name string
		op   func(svc *ListService) error
	}{
		{"rename", func(svc *ListService) error {
			return svc.RenameList(context.Background(), "u2", "L1", "New")
		}},
		{"delete", func(svc *ListService) error {
			return svc.DeleteList(context.Background(), "u2", "L1")
		}},
		{"add member", func(svc *ListService) error {
			return svc.AddMember(context.Background(), "u2", "L1", "u3")
		}},
		{"remove member", func(svc *ListService) error {
			return svc.RemoveMember(context.Background(), "u2", "L1", "u1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubDynamoClient{}
			stubList(t, stub, list)
			svc := newTestListService(stub)

			// u2 is a member but not the owner
			if err := tt.op(svc); !errors.Is(err, ErrNotOwner) {
				t.Fatalf("expected ErrNotOwner, got %v", err)
			}
			if len(stub.updateInputs)+len(stub.deleteInputs) != 0 {
				t.Fatal("rejected operation must not touch the store")
			}
		})
	}
}

func TestAddMemberAlreadyMember(t *testing.T) {
	stub := &stubDynamoClient{}
	stubList(t, stub, models.List{ListID: "L1", Owner: "u1", Members: []string{"u1", "u2"}})
	svc := newTestListService(stub)

	if err := svc.AddMember(context.Background(), "u1", "L1", "u2"); !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestAddMemberEmitsActivity(t *testing.T) {
	stub := &stubDynamoClient{}
	stubList(t, stub, models.List{ListID: "L1", Title: "Trip", Owner: "u1", Members: []string{"u1"}})
	svc := newTestListService(stub)

	if err := svc.AddMember(context.Background(), "u1", "L1", "u3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stub.updateInputs) != 1 {
		t.Fatalf("expected 1 member-set update, got %d", len(stub.updateInputs))
	}
	if !strings.HasPrefix(*stub.updateInputs[0].UpdateExpression, "ADD") {
		t.Errorf("member addition must be an atomic ADD, got %q", *stub.updateInputs[0].UpdateExpression)
	}

	puts := stub.putsToTable(models.Activity{}.TableName())
	if len(puts) != 1 {
		t.Fatalf("expected 1 list_member_added activity, got %d", len(puts))
	}
	var activity models.Activity
	if err := attributevalue.UnmarshalMap(puts[0].Item, &activity); err != nil {
		t.Fatalf("failed to unmarshal activity: %v", err)
	}
	if activity.UserID != "u3" || activity.Type != models.ActivityTypeListMemberAdded {
		t.Errorf("activity = %+v, want list_member_added for u3", activity)
	}
}

func TestRemoveMemberCannotRemoveOwner(t *testing.T) {
	stub := &stubDynamoClient{}
	stubList(t, stub, models.List{ListID: "L1", Owner: "u1", Members: []string{"u1", "u2"}})
	svc := newTestListService(stub)

	if err := svc.RemoveMember(context.Background(), "u1", "L1", "u1"); !errors.Is(err, ErrCannotRemoveOwner) {
		t.Fatalf("expected ErrCannotRemoveOwner, got %v", err)
	}
}

func TestRemoveMemberUsesAtomicDelete(t *testing.T) {
	stub := &stubDynamoClient{}
	stubList(t, stub, models.List{ListID: "L1", Owner: "u1", Members: []string{"u1", "u2"}})
	svc := newTestListService(stub)

	if err := svc.RemoveMember(context.Background(), "u1", "L1", "u2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.updateInputs) != 1 {
		t.Fatalf("expected 1 update, got %d", len(stub.updateInputs))
	}
	if !strings.HasPrefix(*stub.updateInputs[0].UpdateExpression, "DELETE") {
		t.Errorf("member removal must be an atomic DELETE, got %q", *stub.updateInputs[0].UpdateExpression)
	}
}

func stubInviteCodeQuery(t *testing.T, stub *stubDynamoClient, lists ...models.List) {
	t.Helper()
	stub.queryFunc = func(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		if input.IndexName != nil && *input.IndexName == models.InviteCodeIndex {
			code := attrString(input.ExpressionAttributeValues, ":code")
			for _, list := range lists {
				if list.InviteCode == code {
					return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mustMarshal(t, list)}}, nil
				}
			}
		}
		return &dynamodb.QueryOutput{}, nil
	}
}

func TestJoinListByInviteCodeNotFound(t *testing.T) {
	stub := &stubDynamoClient{}
	stubInviteCodeQuery(t, stub)
	svc := newTestListService(stub)

	_, err := svc.JoinListByInviteCode(context.Background(), "u9", "00000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJoinListByInviteCodeAlreadyMember(t *testing.T) {
	stub := &stubDynamoClient{}
	stubInviteCodeQuery(t, stub, models.List{ListID: "L1", Owner: "u1", Members: []string{"u1", "u2"}, InviteCode: "12345"})
	svc := newTestListService(stub)

	_, err := svc.JoinListByInviteCode(context.Background(), "u2", "12345")
	if !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
	if len(stub.updateInputs) != 0 {
		t.Fatal("a rejected join must leave the member set untouched")
	}
}

func TestJoinListByInviteCodeSuccess(t *testing.T) {
	stub := &stubDynamoClient{}
	stubInviteCodeQuery(t, stub, models.List{ListID: "L1", Title: "Trip", Owner: "u1", Members: []string{"u1"}, InviteCode: "12345"})
	stub.getFunc = func(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: mustMarshal(t, models.UserProfile{UserID: "u2", FirstName: "Bob"})}, nil
	}
	svc := newTestListService(stub)

	list, err := svc.JoinListByInviteCode(context.Background(), "u2", "12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !list.HasMember("u2") {
		t.Errorf("joined list members = %v, should include u2", list.Members)
	}

	// Owner is notified
	puts := stub.putsToTable(models.Activity{}.TableName())
	if len(puts) != 1 {
		t.Fatalf("expected 1 list_join activity, got %d", len(puts))
	}
	var activity models.Activity
	if err := attributevalue.UnmarshalMap(puts[0].Item, &activity); err != nil {
		t.Fatalf("failed to unmarshal activity: %v", err)
	}
	if activity.UserID != "u1" || activity.Type != models.ActivityTypeListJoin {
		t.Errorf("activity = %+v, want list_join addressed to the owner", activity)
	}
}

func TestDeleteListReleasesInviteCode(t *testing.T) {
	stub := &stubDynamoClient{}
	stubList(t, stub, models.List{ListID: "L1", Owner: "u1", Members: []string{"u1"}, InviteCode: "54321"})
	svc := newTestListService(stub)

	if err := svc.DeleteList(context.Background(), "u1", "L1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stub.deleteInputs) != 2 {
		t.Fatalf("expected list delete plus code release, got %d deletes", len(stub.deleteInputs))
	}
	codeDelete := stub.deleteInputs[1]
	if *codeDelete.TableName != (models.CodeReservation{}).TableName() {
		t.Errorf("second delete should target the code table, got %s", *codeDelete.TableName)
	}
	if keyString(codeDelete.Key, "code") != "54321" {
		t.Errorf("released code = %s, want 54321", keyString(codeDelete.Key, "code"))
	}
}
