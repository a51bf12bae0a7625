package services

import "errors"

// Sentinel errors for business-rule violations. Handlers discriminate with
// errors.Is and map each sentinel to a fixed HTTP status, so the status
// mapping is total over this list rather than relying on message text.
var (
	// ErrForbidden: authenticated caller is not allowed to administer the trip.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCode: no invite exists for the presented code.
	ErrInvalidCode = errors.New("invalid code")

	// ErrCodeAlreadyUsed: the invite exists but was already claimed.
	ErrCodeAlreadyUsed = errors.New("code already used")

	ErrTripNotFound     = errors.New("trip not found")
	ErrRegionNotFound   = errors.New("region not found")
	ErrItemNotFound     = errors.New("wishlist item not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrCannotRemoveOwner = errors.New("cannot remove trip owner")
)
