package domain

import "errors"

var (
	// ErrStorageUnavailable marks datastore connectivity failures. The request
	// fails but the process keeps serving; retry policy belongs to the caller.
	ErrStorageUnavailable = errors.New("score storage unavailable")

	// ErrChatUnavailable marks outbound message delivery failures.
	ErrChatUnavailable = errors.New("chat delivery unavailable")
)
