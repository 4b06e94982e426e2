package codec

import "errors"

var (
	ErrMalformed           = errors.New("codec: malformed composition code")
	ErrEncodingUnavailable = errors.New("codec: text encoding unavailable")
)
