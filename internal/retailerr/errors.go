package retailerr

import (
	"errors"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateStoreID  = errors.New("duplicate store id")
	ErrEmptyChain        = errors.New("chain has no stores")
)

const (
	CodeInvalidArgument   = "InvalidArgument"
	CodeProductNotFound   = "ProductNotFound"
	CodeInsufficientStock = "InsufficientStock"
	CodeDuplicateStoreID  = "DuplicateStoreId"
	CodeEmptyChain        = "EmptyChain"
	CodeInternal          = "Internal"
)

// Code returns the stable error code for err. Errors that do not wrap one of
// the package sentinels are reported as CodeInternal; nil yields "".
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrDuplicateStoreID):
		return CodeDuplicateStoreID
	case errors.Is(err, ErrEmptyChain):
		return CodeEmptyChain
	}
	return CodeInternal
}

// IsRecoverable reports whether err is one of the domain conditions that
// leave state untouched and only need to be surfaced to the caller.
func IsRecoverable(err error) bool {
	return err != nil && Code(err) != CodeInternal
}
