package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wishlink_server/models"
	"wishlink_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo *DynamoService
	Codes  *CodeService
}

// AddUserProfile creates a user document at signup completion. Both shareable
// codes are allocated up front; privacy flags default to visible.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	userCode, err := ups.Codes.AllocateUniqueCode(ctx, models.CodeScopeUserCode, utils.Generate6DigitCode, MaxCodeAttempts)
	if err != nil {
		return nil, err
	}
	friendCode, err := ups.Codes.AllocateUniqueCode(ctx, models.CodeScopeFriendCode, utils.Generate6DigitCode, MaxCodeAttempts)
	if err != nil {
		return nil, err
	}

	profile.UserCode = userCode
	profile.FriendCode = friendCode
	profile.PrivacyVisibility = true
	profile.PrivacyNotifications = true
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfile{}.TableName(), profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfile{}.TableName(), key)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetDashboardProfile is the dashboard-load read. Older user documents may
// predate code generation; a missing userCode or friendCode is allocated and
// persisted here so every dashboard render has one to show.
func (ups *UserProfileService) GetDashboardProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]string{}
	if profile.UserCode == "" {
		code, err := ups.Codes.AllocateUniqueCode(ctx, models.CodeScopeUserCode, utils.Generate6DigitCode, MaxCodeAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to backfill user code: %w", err)
		}
		profile.UserCode = code
		updates["userCode"] = code
	}
	if profile.FriendCode == "" {
		code, err := ups.Codes.AllocateUniqueCode(ctx, models.CodeScopeFriendCode, utils.Generate6DigitCode, MaxCodeAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to backfill friend code: %w", err)
		}
		profile.FriendCode = code
		updates["friendCode"] = code
	}

	if len(updates) > 0 {
		fields := map[string]interface{}{}
		for k, v := range updates {
			fields[k] = v
		}
		if _, err := ups.UpdateUserProfile(ctx, userID, fields); err != nil {
			return nil, fmt.Errorf("failed to persist backfilled codes: %w", err)
		}
		log.Printf("Backfilled shareable codes for user %s", userID)
	}

	return profile, nil
}

// UpdateUserProfile updates an existing user profile. Values must be strings
// or bools (name parts, username, photoURL, privacy flags).
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","

		switch value := v.(type) {
		case string:
			expressionAttributeValues[placeholder] = &types.AttributeValueMemberS{Value: value}
		case bool:
			expressionAttributeValues[placeholder] = &types.AttributeValueMemberBOOL{Value: value}
		default:
			return nil, fmt.Errorf("unsupported update type for field '%s'", k)
		}
		expressionAttributeNames[attributeName] = k
	}

	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.UserProfile{}.TableName(), updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, err
	}
	return &updatedProfile, nil
}

// GetDisplayName resolves a user id to the name used in activity messages.
// Never fails: unknown users render as "Unknown".
func (ups *UserProfileService) GetDisplayName(ctx context.Context, userID string) string {
	profile, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return profile.DisplayName()
}

// GetUserProfileByFriendCode resolves a friend code to a profile through the
// FriendCodeIndex GSI. Returns ErrNotFound when the code matches no user.
func (ups *UserProfileService) GetUserProfileByFriendCode(ctx context.Context, code string) (*models.UserProfile, error) {
	items, err := ups.Dynamo.QueryItemsWithIndex(
		ctx,
		models.UserProfile{}.TableName(),
		models.FriendCodeIndex,
		"friendCode = :code",
		map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		nil,
		1,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve friend code: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
