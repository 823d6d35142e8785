package domain

import "errors"

// One sentinel per business failure. The HTTP layer maps each of these to a
// status code; anything not in this list is treated as an internal error.
var (
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrInvalidMovie    = errors.New("invalid movie")
	ErrInvalidGenre    = errors.New("invalid genre")
	ErrOutOfStock      = errors.New("movie not in stock")

	ErrRentalNotFound  = errors.New("rental not found")
	ErrAlreadyReturned = errors.New("return already processed")

	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTransactionFailed wraps any unexpected failure inside the checkout or
	// return unit of work after it has been rolled back.
	ErrTransactionFailed = errors.New("transaction failed")
)
