package field

import "errors"

var (
	ErrNotFound    = errors.New("field not found")
	ErrInvalidType = errors.New("invalid field type")
	ErrNotNested   = errors.New("field is not nested")
)
