package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuantity indicates a ticket quantity outside the allowed 1..10 range.
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")

	// ErrInsufficientInventory indicates the competition does not have enough tickets left.
	ErrInsufficientInventory = errors.New("not enough tickets available")

	// ErrQuantityCapExceeded indicates a cart merge would exceed the per-competition cap.
	ErrQuantityCapExceeded = errors.New("maximum 10 tickets per competition allowed")

	// ErrEmptyCart indicates checkout was attempted with no items in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
