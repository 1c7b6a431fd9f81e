package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wishlink_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MaxCodeAttempts bounds the allocator's retry loop
const MaxCodeAttempts = 20

// CodeService allocates short shareable codes (friend codes, user codes,
// list invite codes) that are unique within their scope
type CodeService struct {
	Dynamo *DynamoService
}

// AllocateUniqueCode reserves a fresh code in the given scope. A candidate is
// drawn from the generator and inserted with a uniqueness condition; a
// conditional failure means another document already holds the code, and a new
// candidate is drawn. Returns ErrCodeSpaceExhausted once maxAttempts
// collisions have been observed — callers must abort the surrounding
// operation, there is no fallback.
func (s *CodeService) AllocateUniqueCode(ctx context.Context, scope string, generate func() string, maxAttempts int) (string, error) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		candidate := generate()

		reservation := models.CodeReservation{
			Scope:     scope,
			Code:      candidate,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}

		err := s.Dynamo.PutItemIfAbsent(ctx, models.CodeReservation{}.TableName(), reservation, "code")
		if err == nil {
			return candidate, nil
		}
		if errors.Is(err, ErrCodeTaken) {
			continue
		}
		return "", fmt.Errorf("failed to reserve code in scope '%s': %w", scope, err)
	}
	return "", ErrCodeSpaceExhausted
}

// ReleaseCode frees a reservation, e.g. when its list is deleted. Best-effort.
func (s *CodeService) ReleaseCode(ctx context.Context, scope, code string) error {
	key := map[string]types.AttributeValue{
		"scope": &types.AttributeValueMemberS{Value: scope},
		"code":  &types.AttributeValueMemberS{Value: code},
	}
	return s.Dynamo.DeleteItem(ctx, models.CodeReservation{}.TableName(), key)
}
