package services

import "errors"

// Operation errors surfaced to controllers. Every one of these maps to a
// user-visible failure; none is retried automatically.
var (
	// ErrNotFound is returned when a lookup by id or code matches nothing
	ErrNotFound = errors.New("not found")

	// ErrNotOwner is returned when a non-owner attempts an owner-only list operation
	ErrNotOwner = errors.New("only the owner may perform this operation")

	// ErrAlreadyMember is returned when the target user is already in the member set
	ErrAlreadyMember = errors.New("user is already a member")

	// ErrAlreadyFriends is returned when the two users are already friends
	ErrAlreadyFriends = errors.New("users are already friends")

	// ErrSelfCode is returned when a friend code resolves to the acting user
	ErrSelfCode = errors.New("cannot add yourself as a friend")

	// ErrCannotRemoveOwner guards the owner-always-a-member invariant
	ErrCannotRemoveOwner = errors.New("the owner cannot be removed from a list")

	// ErrCodeSpaceExhausted is returned when the allocator hits its retry bound
	ErrCodeSpaceExhausted = errors.New("unable to allocate a unique code")

	// ErrCodeTaken signals a code reservation collision inside the allocator loop
	ErrCodeTaken = errors.New("code already reserved")
)
