package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBrandNotFound indicates the brand is not in the catalog
	ErrBrandNotFound = errors.New("brand not found")
	// ErrModelNotFound indicates no catalog model matches the description
	ErrModelNotFound = errors.New("model not found")
	// ErrOutOfStock indicates the resolved product is out of stock
	ErrOutOfStock = errors.New("out of stock")
	// ErrSizeUnavailable indicates the requested size is not offered
	ErrSizeUnavailable = errors.New("size unavailable")
	// ErrColorUnavailable indicates the requested color is not offered
	ErrColorUnavailable = errors.New("color unavailable")
	// ErrInvalidIndex indicates a cart index out of bounds
	ErrInvalidIndex = errors.New("invalid cart index")
)
