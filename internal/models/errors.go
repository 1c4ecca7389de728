package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrScan ErrorType = iota
	ErrClassify
	ErrChecksum
	ErrAssemble
	ErrOutput
	ErrInvalidConfig
	ErrVerify
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrScan:
		return "Scan"
	case ErrClassify:
		return "Classify"
	case ErrChecksum:
		return "Checksum"
	case ErrAssemble:
		return "Assemble"
	case ErrOutput:
		return "Output"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrVerify:
		return "Verify"
	default:
		return "Unknown"
	}
}

// SBOMError represents an error during SBOM generation or verification
type SBOMError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *SBOMError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *SBOMError) Unwrap() error {
	return e.Err
}
