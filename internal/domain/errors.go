package domain

import "errors"

var (
	ErrOperationInFlight = errors.New("cart operation already in flight")
	ErrProductNotFound   = errors.New("product not found")
	ErrSecretNotFound    = errors.New("secret not found")
)
