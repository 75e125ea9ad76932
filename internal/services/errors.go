package services

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateFNSKU     = errors.New("fnsku already assigned to another product")
	ErrFNSKUExhausted     = errors.New("could not generate an unused fnsku")
	ErrNotMasked          = errors.New("product is not masked")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)
