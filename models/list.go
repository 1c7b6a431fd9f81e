package models

// List represents a shared wish list
type List struct {
	ListID     string   `dynamodbav:"listId" json:"listId"`             // Partition Key (PK) - Unique list ID
	Title      string   `dynamodbav:"title" json:"title"`               // Defaults to "Untitled"
	Owner      string   `dynamodbav:"owner" json:"owner"`               // User who created the list, immutable
	Members    []string `dynamodbav:"members,stringset" json:"members"` // Always contains the owner
	InviteCode string   `dynamodbav:"inviteCode" json:"inviteCode"`     // Unique 5-digit join code, immutable
	Category   string   `dynamodbav:"category,omitempty" json:"category,omitempty"`
	CreatedAt  string   `dynamodbav:"createdAt" json:"createdAt"`
}

// List classifications, derived from member count and never stored
const (
	ListClassPersonal = "personal"
	ListClassPaired   = "paired"
	ListClassGroup    = "group"
)

// DefaultListTitle is used when a list is created with an empty title
const DefaultListTitle = "Untitled"

// Classification derives the list kind from the current member count.
// Recomputed on every load.
func (l List) Classification() string {
	switch {
	case len(l.Members) <= 1:
		return ListClassPersonal
	case len(l.Members) == 2:
		return ListClassPaired
	default:
		return ListClassGroup
	}
}

// HasMember reports whether uid is in the member set
func (l List) HasMember(uid string) bool {
	for _, m := range l.Members {
		if m == uid {
			return true
		}
	}
	return false
}

// TableName returns the DynamoDB table name for the List model
func (List) TableName() string {
	return "Lists"
}

// InviteCodeIndex is the GSI used to resolve an invite code to a list
const InviteCodeIndex = "InviteCodeIndex"
