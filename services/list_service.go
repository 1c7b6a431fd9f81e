package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wishlink_server/models"
	"wishlink_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ListService owns the lifecycle of shared wish lists
type ListService struct {
	Dynamo   *DynamoService
	Codes    *CodeService
	Profiles *UserProfileService
	Activity *ActivityService
}

// ClassifiedLists groups a user's lists by their derived classification
type ClassifiedLists struct {
	Personal []models.List `json:"personal"`
	Paired   []models.List `json:"paired"`
	Group    []models.List `json:"group"`
}

// CreateList creates a list owned by the acting user. Members are the acting
// user plus the given ids, deduplicated. Every other member receives a
// list_invite activity; those writes are best-effort and independent of the
// list write.
func (s *ListService) CreateList(ctx context.Context, actingUserID, title string, memberIDs []string, category string) (*models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = models.DefaultListTitle
	}

	inviteCode, err := s.Codes.AllocateUniqueCode(ctx, models.CodeScopeListInvite, utils.Generate5DigitCode, MaxCodeAttempts)
	if err != nil {
		return nil, err
	}

	members := []string{actingUserID}
	seen := map[string]bool{actingUserID: true}
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			members = append(members, id)
		}
	}

	list := models.List{
		ListID:     uuid.New().String(),
		Title:      title,
		Owner:      actingUserID,
		Members:    members,
		InviteCode: inviteCode,
		Category:   category,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.List{}.TableName(), list); err != nil {
		return nil, err
	}

	actingName := s.Profiles.GetDisplayName(ctx, actingUserID)
	invites := make([]models.Activity, 0, len(members)-1)
	for _, memberID := range members {
		if memberID == actingUserID {
			continue
		}
		invites = append(invites, models.Activity{
			UserID:       memberID,
			Type:         models.ActivityTypeListInvite,
			FromUser:     actingUserID,
			FromUserName: actingName,
			ListID:       list.ListID,
			ListTitle:    list.Title,
			Message:      fmt.Sprintf("%s invited you to \"%s\"", actingName, list.Title),
		})
	}
	if err := s.Activity.LogActivities(ctx, invites); err != nil {
		log.Printf("Failed to log list_invite activities for list %s: %v", list.ListID, err)
	}

	return &list, nil
}

// GetList retrieves a list by id
func (s *ListService) GetList(ctx context.Context, listID string) (*models.List, error) {
	item, err := s.Dynamo.GetItem(ctx, models.List{}.TableName(), listKey(listID))
	if err != nil {
		return nil, err
	}

	var list models.List
	if err := attributevalue.UnmarshalMap(item, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetListByInviteCode resolves an invite code through the InviteCodeIndex GSI
func (s *ListService) GetListByInviteCode(ctx context.Context, code string) (*models.List, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(
		ctx,
		models.List{}.TableName(),
		models.InviteCodeIndex,
		"inviteCode = :code",
		map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		nil,
		1,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invite code: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var list models.List
	if err := attributevalue.UnmarshalMap(items[0], &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// JoinListByInviteCode adds the acting user to the list the code resolves to.
// The owner receives a list_join activity. Joining twice yields
// ErrAlreadyMember and leaves the member set unchanged.
func (s *ListService) JoinListByInviteCode(ctx context.Context, actingUserID, code string) (*models.List, error) {
	list, err := s.GetListByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if list.HasMember(actingUserID) {
		return nil, ErrAlreadyMember
	}

	if err := s.Dynamo.AddToStringSet(ctx, models.List{}.TableName(), listKey(list.ListID), "members", actingUserID); err != nil {
		return nil, fmt.Errorf("failed to join list: %w", err)
	}
	list.Members = append(list.Members, actingUserID)

	actingName := s.Profiles.GetDisplayName(ctx, actingUserID)
	activity := models.Activity{
		UserID:       list.Owner,
		Type:         models.ActivityTypeListJoin,
		FromUser:     actingUserID,
		FromUserName: actingName,
		ListID:       list.ListID,
		ListTitle:    list.Title,
		Message:      fmt.Sprintf("%s joined your list \"%s\"", actingName, list.Title),
	}
	if err := s.Activity.LogActivity(ctx, activity); err != nil {
		log.Printf("Failed to log list_join activity for list %s: %v", list.ListID, err)
	}

	return list, nil
}

// RenameList sets a new title. Owner-only; ownership is re-read per call.
func (s *ListService) RenameList(ctx context.Context, actingUserID, listID, newTitle string) error {
	if _, err := s.requireOwner(ctx, actingUserID, listID); err != nil {
		return err
	}

	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		newTitle = models.DefaultListTitle
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.List{}.TableName(), "SET #title = :title", listKey(listID),
		map[string]types.AttributeValue{
			":title": &types.AttributeValueMemberS{Value: newTitle},
		},
		map[string]string{"#title": "title"},
	)
	return err
}

// DeleteList removes the list document. Owner-only, terminal. The invite code
// reservation is released so the code can be reused.
func (s *ListService) DeleteList(ctx context.Context, actingUserID, listID string) error {
	list, err := s.requireOwner(ctx, actingUserID, listID)
	if err != nil {
		return err
	}

	if err := s.Dynamo.DeleteItem(ctx, models.List{}.TableName(), listKey(listID)); err != nil {
		return err
	}

	if err := s.Codes.ReleaseCode(ctx, models.CodeScopeListInvite, list.InviteCode); err != nil {
		log.Printf("Failed to release invite code %s for deleted list %s: %v", list.InviteCode, listID, err)
	}
	return nil
}

// AddMember adds a user to the member set. Owner-only; the new member
// receives a list_member_added activity.
func (s *ListService) AddMember(ctx context.Context, actingUserID, listID, newMemberID string) error {
	list, err := s.requireOwner(ctx, actingUserID, listID)
	if err != nil {
		return err
	}
	if list.HasMember(newMemberID) {
		return ErrAlreadyMember
	}

	if err := s.Dynamo.AddToStringSet(ctx, models.List{}.TableName(), listKey(listID), "members", newMemberID); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	actingName := s.Profiles.GetDisplayName(ctx, actingUserID)
	activity := models.Activity{
		UserID:       newMemberID,
		Type:         models.ActivityTypeListMemberAdded,
		FromUser:     actingUserID,
		FromUserName: actingName,
		ListID:       list.ListID,
		ListTitle:    list.Title,
		Message:      fmt.Sprintf("%s added you to \"%s\"", actingName, list.Title),
	}
	if err := s.Activity.LogActivity(ctx, activity); err != nil {
		log.Printf("Failed to log list_member_added activity for list %s: %v", listID, err)
	}

	return nil
}

// RemoveMember removes a user from the member set. Owner-only. The owner
// cannot be removed; owner ∈ members must hold at all times.
func (s *ListService) RemoveMember(ctx context.Context, actingUserID, listID, memberID string) error {
	list, err := s.requireOwner(ctx, actingUserID, listID)
	if err != nil {
		return err
	}
	if memberID == list.Owner {
		return ErrCannotRemoveOwner
	}

	return s.Dynamo.DeleteFromStringSet(ctx, models.List{}.TableName(), listKey(listID), "members", memberID)
}

// GetMemberLists returns every list the user belongs to. Membership lives in
// a set attribute, so this is a filtered scan rather than a key query.
func (s *ListService) GetMemberLists(ctx context.Context, userID string) ([]models.List, error) {
	var lists []models.List
	err := s.Dynamo.ScanWithFilter(
		ctx,
		models.List{}.TableName(),
		"contains(#members, :uid)",
		map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		map[string]string{"#members": "members"},
		&lists,
	)
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// GetListsForUser returns the user's lists grouped by derived classification
func (s *ListService) GetListsForUser(ctx context.Context, userID string) (*ClassifiedLists, error) {
	lists, err := s.GetMemberLists(ctx, userID)
	if err != nil {
		return nil, err
	}

	classified := &ClassifiedLists{
		Personal: []models.List{},
		Paired:   []models.List{},
		Group:    []models.List{},
	}
	for _, list := range lists {
		switch list.Classification() {
		case models.ListClassPersonal:
			classified.Personal = append(classified.Personal, list)
		case models.ListClassPaired:
			classified.Paired = append(classified.Paired, list)
		default:
			classified.Group = append(classified.Group, list)
		}
	}
	return classified, nil
}

// requireOwner re-reads the list and checks ownership against current state
func (s *ListService) requireOwner(ctx context.Context, actingUserID, listID string) (*models.List, error) {
	list, err := s.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.Owner != actingUserID {
		return nil, ErrNotOwner
	}
	return list, nil
}

func listKey(listID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"listId": &types.AttributeValueMemberS{Value: listID},
	}
}
