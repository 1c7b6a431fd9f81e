package services

import (
	"context"

	"wishlink_server/utils"
)

// SearchService backs the dashboard omni-search box
type SearchService struct {
	Friends *FriendService
	Lists   *ListService
}

// SearchResult is one omni-search hit
type SearchResult struct {
	Type string `json:"type"` // "friend" or "list"
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Search fuzzy-matches the term against the acting user's friend names and
// list titles. Matching is subsequence-based: "ts" hits "Trip to Spain".
func (s *SearchService) Search(ctx context.Context, userID, term string) ([]SearchResult, error) {
	results := []SearchResult{}
	if term == "" {
		return results, nil
	}

	friends, err := s.Friends.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, friend := range friends {
		if utils.FuzzyMatch(term, friend.FirstName) {
			results = append(results, SearchResult{Type: "friend", Name: friend.FirstName, ID: friend.UserID})
		}
	}

	lists, err := s.Lists.GetMemberLists(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, list := range lists {
		if utils.FuzzyMatch(term, list.Title) {
			results = append(results, SearchResult{Type: "list", Name: list.Title, ID: list.ListID})
		}
	}

	return results, nil
}
