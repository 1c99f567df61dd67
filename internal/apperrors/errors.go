package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientBalance indicates a spend or deposit exceeding the available balance.
var ErrInsufficientBalance = errors.New("insufficient available balance")

// ErrPersistence indicates that the durable store failed after retries.
var ErrPersistence = errors.New("persistence error")
