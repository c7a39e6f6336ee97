package admin

import "errors"

var (
	ErrNotAdmin         = errors.New("user does not hold an elevated role")
	ErrPermissionDenied = errors.New("permission denied")
)
