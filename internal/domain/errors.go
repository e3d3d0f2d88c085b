package domain

import "errors"

var (
	ErrDuplicateSubmission = errors.New("mood already submitted today")
	ErrUnknownMood         = errors.New("unknown mood level")
	ErrCommentTooLong      = errors.New("comment too long")
	ErrMissingUserID       = errors.New("missing user id")
)
