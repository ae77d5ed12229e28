package domain

import "errors"

// ErrUserExists is returned when registering an email that is already taken.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials covers both unknown-email and wrong-password login
// failures. The two cases are deliberately indistinguishable so the response
// never leaks which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidID is returned for identifiers that cannot be parsed as ObjectIDs.
var ErrInvalidID = errors.New("invalid identifier")
