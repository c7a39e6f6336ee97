package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrInvalidStatus      = errors.New("invalid report status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrNotAuthorized      = errors.New("not authorized to moderate reports")
	ErrTooManyAttachments = errors.New("too many attachments")
)
