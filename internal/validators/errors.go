package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Validation errors. Their text is returned to API clients as is.
var (
	ErrEmailRequired    = errors.New("email required.")
	ErrUsernameRequired = errors.New("username required.")
	ErrPasswordRequired = errors.New("password required.")

	ErrTitleRequired       = errors.New("Title is required.")
	ErrContentRequired     = errors.New("Content is required")
	ErrNoChangesProvided   = errors.New("No changes provided.")
	ErrSearchQueryRequired = errors.New("Search query is required.")
)
