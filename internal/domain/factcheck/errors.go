package factcheck

import "errors"

var (
	ErrFactCheckNotFound = errors.New("fact-check not found")
	ErrInvalidVerdict    = errors.New("invalid verdict")
	ErrInvalidTransition = errors.New("verdict transition not allowed")
	ErrNotAuthorized     = errors.New("not authorized to review fact-checks")
)
