package contract

import "errors"

var (
	ErrModelInvoke = errors.New("model invoke failed")
	ErrRetrieval   = errors.New("passage retrieval failed")
	ErrDatasetLoad = errors.New("store dataset load failed")
	ErrValidation  = errors.New("validation failed")
)
