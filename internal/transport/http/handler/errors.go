package handler

const (
	errInternalServer   = "Internal server error"
	errUnauthorized     = "Could not validate credentials"
	errEmailTaken       = "user with this email already exists"
	errWeakPassword     = "password shouldn't be less than 8 characters"
	errIncorrectDetails = "Incorrect details"
	errUserNotFound     = "User not found"
	errInvalidAmount    = "points amount must be a positive integer"
)
