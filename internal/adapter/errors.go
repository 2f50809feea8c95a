package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("invalid or expired credential")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("repository or secret not found")
	ErrValidationRejected  = errors.New("request rejected by remote validation")
	ErrInternalServerError = errors.New("remote internal server error")
	ErrBadGateway          = errors.New("remote bad gateway")
)
