package asset

import "errors"

var (
	ErrAssetNotFound   = errors.New("asset not found")
	ErrInvalidCategory = errors.New("invalid asset category")
	ErrInvalidStatus   = errors.New("invalid asset status")
)
