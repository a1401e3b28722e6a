package vo

import "errors"

// CodeTakenMessage is shown when a flight code is already used.
const CodeTakenMessage = "Code is already taken!, Please change code and try again."

var (
	ErrCodeTaken          = errors.New(CodeTakenMessage)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidFilter      = errors.New("invalid query parameters")
	ErrInvalidFlight      = errors.New("invalid flight")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionNotFound    = errors.New("session not found")
)
