package services

import "errors"

// Conflict outcomes from the uniqueness check. Email is checked first; when
// both values collide only ErrEmailTaken is reported.
var (
	ErrEmailTaken = errors.New("email address already exists")
	ErrPhoneTaken = errors.New("phone number already exists")
)
