// File: codes.go
// Title: Error Classification Codes
// Description: Defines the classification codes for stdx errors. Codes let
//              callers react to a failure category without matching on the
//              error message text.

package fault

// Code classifies an error by its failure category
type Code int

const (
	// CodeUnknown is the default for errors without an explicit code
	CodeUnknown Code = iota

	// CodeNilPointer indicates a nil pointer where a valid pointer was required
	CodeNilPointer

	// CodeOutOfRange indicates a position beyond the valid bounds of a sequence
	CodeOutOfRange

	// CodeInvalidSize indicates a size or length argument that is not usable,
	// for example a zero-byte hex dump
	CodeInvalidSize

	// CodeInvalidArgument indicates an argument that violates the callee's
	// contract in some other way
	CodeInvalidArgument

	// CodeNotImplemented indicates functionality that is declared but not built
	CodeNotImplemented

	// CodeClosed indicates an operation on an already closed resource,
	// for example submitting to a closed worker pool
	CodeClosed

	// CodeConfig indicates an invalid or unreadable configuration
	CodeConfig

	// CodeIO indicates a failure while reading or writing data
	CodeIO
)

// String returns the string representation of the code
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeNilPointer:
		return "nil_pointer"
	case CodeOutOfRange:
		return "out_of_range"
	case CodeInvalidSize:
		return "invalid_size"
	case CodeInvalidArgument:
		return "invalid_argument"
	case CodeNotImplemented:
		return "not_implemented"
	case CodeClosed:
		return "closed"
	case CodeConfig:
		return "config"
	case CodeIO:
		return "io"
	default:
		return "unknown"
	}
}
