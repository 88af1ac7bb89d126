package model

import "errors"

var (
	// ErrHackathonNotFound indicates that the referenced hackathon does not exist.
	ErrHackathonNotFound = errors.New("hackathon not found")
	// ErrNotOrganizer indicates that the caller does not organize the hackathon.
	ErrNotOrganizer = errors.New("caller is not an organizer of the hackathon")
	// ErrInvalidItemName indicates that the item name is outside 3-100 characters.
	ErrInvalidItemName = errors.New("invalid item name")
	// ErrInvalidQuantity indicates that total_quantity is outside 1-10000.
	ErrInvalidQuantity = errors.New("total_quantity must be between 1 and 10000")
	// ErrInvalidEmail indicates that the participant email is malformed.
	ErrInvalidEmail = errors.New("invalid participant email")
	// ErrItemNotFound indicates that no item matches the secret code.
	ErrItemNotFound = errors.New("logistics item not found")
	// ErrAlreadyRedeemed indicates that the participant already redeemed this item.
	ErrAlreadyRedeemed = errors.New("item already redeemed for participant")
	// ErrExhausted indicates that every unit of the item has been given away.
	ErrExhausted = errors.New("item stock exhausted")
)
