package transmission

import "errors"

// Construction errors. A transmission is never created when its parameter
// vectors are malformed; the caller must fix the configuration and retry.
var (
	ErrVectorSize    = errors.New("reduction and offset vectors must match the transmission arity")
	ErrZeroReduction = errors.New("transmission reduction ratios cannot be zero")
)

// Config validation errors.
var (
	ErrNameEmpty      = errors.New("transmission name must not be empty")
	ErrTypeUnknown    = errors.New("unknown transmission type")
	ErrWrongNameCount = errors.New("actuator and joint name counts must match the transmission arity")
)

// Handle and registry errors.
var (
	ErrNilTransmission = errors.New("transmission must not be nil")
	ErrSlotCount       = errors.New("value slot counts must match the transmission arity")
	ErrNilSlot         = errors.New("value slots must not be nil")
	ErrDuplicateHandle = errors.New("handle is already registered")
	ErrHandleNotFound  = errors.New("handle not found")
)
