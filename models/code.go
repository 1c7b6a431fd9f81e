package models

// CodeReservation pins a short code to a namespace. Inserting with a
// uniqueness condition is what makes user codes, friend codes and list
// invite codes collision-free: the conditional put failing IS the collision.
type CodeReservation struct {
	Scope     string `dynamodbav:"scope" json:"scope"` // Partition Key (PK) - code namespace
	Code      string `dynamodbav:"code" json:"code"`   // Sort Key (SK) - the reserved code
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Code scopes
const (
	CodeScopeFriendCode = "friendCode"
	CodeScopeUserCode   = "userCode"
	CodeScopeListInvite = "listInvite"
)

// TableName returns the DynamoDB table name for code reservations
func (CodeReservation) TableName() string {
	return "Codes"
}
