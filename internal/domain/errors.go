package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
)
