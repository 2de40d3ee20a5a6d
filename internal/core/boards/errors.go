package boards

import "errors"

var (
	// ErrBoardNotFound indicates the requested board doesn't exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrBoardNotActive indicates the board is disabled for new writes
	ErrBoardNotActive = errors.New("board is not active")
)
