package models

// Activity represents a one-shot notification addressed to a single user
type Activity struct {
	UserID       string `dynamodbav:"userId" json:"userId"`         // Partition Key (PK) - Target user
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`   // Sort Key (SK) - Event timestamp
	ActivityID   string `dynamodbav:"activityId" json:"activityId"` // Unique record ID
	Type         string `dynamodbav:"type" json:"type"`
	FromUser     string `dynamodbav:"fromUser" json:"fromUser"`
	FromUserName string `dynamodbav:"fromUserName" json:"fromUserName"`
	Message      string `dynamodbav:"message" json:"message"`
	ListID       string `dynamodbav:"listId,omitempty" json:"listId,omitempty"`
	ListTitle    string `dynamodbav:"listTitle,omitempty" json:"listTitle,omitempty"`
}

// Activity Type Constants
const (
	ActivityTypeFriendAdded     = "friend_added"
	ActivityTypeListInvite      = "list_invite"
	ActivityTypeListMemberAdded = "list_member_added"
	ActivityTypeListJoin        = "list_join"
)

// TableName returns the DynamoDB table name for the Activity model
func (Activity) TableName() string {
	return "Activity"
}
