package qrcode

import "errors"

var (
	ErrCodeNotFound        = errors.New("qr code not found")
	ErrCodeAlreadyExists   = errors.New("qr code already exists")
	ErrCodeAlreadyAssigned = errors.New("qr code already assigned")
	ErrGenerationExhausted = errors.New("qr code generation attempts exhausted")
	ErrInvalidCount        = errors.New("count must be between 1 and 100")
)
