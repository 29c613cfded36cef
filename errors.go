package intvec

import "github.com/mewkiz/intvec/codec"

// ErrInvalidParameter and ErrValueOutOfDomain are the two build-time
// error kinds of spec §7, re-exported from package codec since that is
// where the underlying domain checks are raised. Build wraps them with
// github.com/pkg/errors for positional context (which index/value
// failed); errors.Is still matches the sentinel through the wrap.
var (
	ErrInvalidParameter = codec.ErrInvalidParameter
	ErrValueOutOfDomain = codec.ErrValueOutOfDomain
)
