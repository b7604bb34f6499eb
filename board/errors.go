package board

import "errors"

// ErrLimitNotAllowed indicates a requested page size outside the allowed set
var ErrLimitNotAllowed = errors.New("page size not in allowed set")
