package convey

import "errors"

var (
	ErrBadConfig = errors.New("bad config")
	ErrDone      = errors.New("request ctx done")
	ErrNotValid  = errors.New("invalid")
)
