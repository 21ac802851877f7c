package domain

import (
	"errors"
)

const (
	RoleCaretaker = "caretaker"

	// DateLayout is the wire and storage format of week start dates.
	DateLayout = "2006-01-02"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrUserNotAllowed    = errors.New("user not allowed")
	ErrTokenNotFound     = errors.New("failed to token not found")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrInvalidWeekStart  = errors.New("week start must be a date in YYYY-MM-DD format")
	ErrInvalidDayIndex   = errors.New("day index must be between 0 and 6")
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrSlotLocked        = errors.New("meal slot is in the past and can no longer be edited")
	ErrInvalidServings   = errors.New("servings must be positive")
	ErrInvalidIngredient = errors.New("ingredient amounts must be non-negative")
)
