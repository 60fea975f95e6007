package admin

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrShopNotFound      = errors.New("shop not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryExists    = errors.New("category name already exists")
	ErrInvalidShopStatus = errors.New("invalid shop status filter")
)
