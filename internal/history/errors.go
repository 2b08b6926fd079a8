package history

import "errors"

var (
	ErrHistoryNotFound = errors.New("history item not found")
	ErrOwnerRequired   = errors.New("history owner is required")
)
