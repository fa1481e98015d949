package types

import "github.com/m-mizutani/goerr/v2"

// Enum errors. ErrUnknownLevel reaching a caller means a value bypassed the
// suggestion sanitizers or persisted-record validation and must be treated as
// a data-integrity failure, not user input error.
var (
	ErrUnknownLevel = goerr.New("unknown rating level")
	ErrInvalidEnum  = goerr.New("value is not a member of the enumeration")
)
