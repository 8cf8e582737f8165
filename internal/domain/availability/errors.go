package availability

import "errors"

var ErrWindowNotFound = errors.New("availability window not found")
