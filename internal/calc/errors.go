package calc

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for emission calculations.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrUnknownFactor indicates the requested category/subcategory/activity
	// combination has no entry in the factor table. The wrapping error
	// carries the offending key path.
	ErrUnknownFactor = constError("unknown emission factor")

	// ErrInvalidArgument indicates a structurally valid but semantically
	// invalid input, such as an unsupported unit string, zero passengers,
	// or a non-positive amortization lifetime.
	ErrInvalidArgument = constError("invalid argument")
)
