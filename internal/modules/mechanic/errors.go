package mechanic

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrShopNotFound    = errors.New("shop not found")
	ErrServiceNotFound = errors.New("service not found")
)
