package bioanalyzer

import "github.com/pkg/errors"

// The package's failure kinds. Functions wrap these with context via
// errors.Wrapf so callers can test the kind with errors.Is and still see
// what went wrong. Failures are signaled eagerly, never as partial results.
var (
	// ErrInvalidInput is for empty required arguments and parameters outside
	// their documented range, like a k-mer size below 1.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedRecord is for FASTA text with no parseable header/sequence
	// pairs.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnsupported is for inputs beyond what the tool is built for, like
	// suffix arrays over texts past the documented length bound.
	ErrUnsupported = errors.New("unsupported")
)
