// Package common contains sentinel errors shared between the livecontent
// server and client components.
package common

import "errors"

var (

	// storage errors
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// auth errors
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrServerMisconfigured = errors.New("server not configured")

	// request errors
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrPayloadTooLarge = errors.New("payload too large")

	// client-side errors
	ErrNetwork = errors.New("network error")
)
