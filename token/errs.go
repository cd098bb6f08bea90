package token

import "errors"

var ErrScan = errors.New("scan error")
