package models

// UserProfile defines the structure for user documents
type UserProfile struct {
	UserID               string   `dynamodbav:"userId" json:"userId"`
	FirstName            string   `dynamodbav:"firstName,omitempty" json:"firstName,omitempty"`
	Surname              string   `dynamodbav:"surname,omitempty" json:"surname,omitempty"`
	Email                string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Username             string   `dynamodbav:"username,omitempty" json:"username,omitempty"`
	PhotoURL             string   `dynamodbav:"photoURL,omitempty" json:"photoURL,omitempty"`
	UserCode             string   `dynamodbav:"userCode,omitempty" json:"userCode,omitempty"`
	FriendCode           string   `dynamodbav:"friendCode,omitempty" json:"friendCode,omitempty"`
	Friends              []string `dynamodbav:"friends,stringset,omitempty" json:"friends,omitempty"`
	PrivacyVisibility    bool     `dynamodbav:"privacyVisibility" json:"privacyVisibility"`
	PrivacyNotifications bool     `dynamodbav:"privacyNotifications" json:"privacyNotifications"`
	CreatedAt            string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// HasFriend reports whether uid is already in the profile's friend set
func (p UserProfile) HasFriend(uid string) bool {
	for _, f := range p.Friends {
		if f == uid {
			return true
		}
	}
	return false
}

// DisplayName returns the name shown in activity messages
func (p UserProfile) DisplayName() string {
	if p.FirstName != "" {
		return p.FirstName
	}
	if p.Username != "" {
		return p.Username
	}
	return "Unknown"
}

// TableName returns the DynamoDB table name for the UserProfile model
func (UserProfile) TableName() string {
	return "Users"
}

// FriendCodeIndex is the GSI used to resolve a friend code to a user
const FriendCodeIndex = "FriendCodeIndex"
