package errors

import "errors"

var (
	ErrExportNotFound  = errors.New("export file not found")
	ErrMalformedExport = errors.New("malformed export file")
	ErrMalformedDate   = errors.New("malformed message date")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
