package services

import (
	"context"
	"fmt"
	"log"

	"wishlink_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FriendService maintains the bidirectional friend edge between user documents
type FriendService struct {
	Dynamo   *DynamoService
	Profiles *UserProfileService
	Activity *ActivityService
}

// FriendSummary is the shape returned to friend listings
type FriendSummary struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	PhotoURL  string `json:"photoURL,omitempty"`
}

// AddFriend resolves a friend code and links both users. The two set-adds are
// atomic individually but not jointly: a crash between them leaves a
// one-directional edge, which the next successful call repairs. The
// friend_added activity addressed to the target is best-effort.
func (s *FriendService) AddFriend(ctx context.Context, actingUserID, code string) error {
	target, err := s.Profiles.GetUserProfileByFriendCode(ctx, code)
	if err != nil {
		return err
	}

	if target.UserID == actingUserID {
		return ErrSelfCode
	}

	acting, err := s.Profiles.GetUserProfile(ctx, actingUserID)
	if err != nil {
		return err
	}
	if acting.HasFriend(target.UserID) {
		return ErrAlreadyFriends
	}

	usersTable := models.UserProfile{}.TableName()
	if err := s.Dynamo.AddToStringSet(ctx, usersTable, userKey(actingUserID), "friends", target.UserID); err != nil {
		return fmt.Errorf("failed to add friend edge: %w", err)
	}
	if err := s.Dynamo.AddToStringSet(ctx, usersTable, userKey(target.UserID), "friends", actingUserID); err != nil {
		return fmt.Errorf("failed to add reverse friend edge: %w", err)
	}

	actingName := acting.DisplayName()
	activity := models.Activity{
		UserID:       target.UserID,
		Type:         models.ActivityTypeFriendAdded,
		FromUser:     actingUserID,
		FromUserName: actingName,
		Message:      fmt.Sprintf("%s added you as a friend", actingName),
	}
	if err := s.Activity.LogActivity(ctx, activity); err != nil {
		log.Printf("Failed to log friend_added activity for user %s: %v", target.UserID, err)
	}

	return nil
}

// GetFriends resolves the acting user's friend ids to display summaries.
// Unresolvable ids are skipped rather than failing the whole listing.
func (s *FriendService) GetFriends(ctx context.Context, userID string) ([]FriendSummary, error) {
	profile, err := s.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]FriendSummary, 0, len(profile.Friends))
	for _, friendID := range profile.Friends {
		friend, err := s.Profiles.GetUserProfile(ctx, friendID)
		if err != nil {
			log.Printf("Skipping unresolvable friend %s: %v", friendID, err)
			continue
		}
		summaries = append(summaries, FriendSummary{
			UserID:    friend.UserID,
			FirstName: friend.DisplayName(),
			PhotoURL:  friend.PhotoURL,
		})
	}
	return summaries, nil
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}
