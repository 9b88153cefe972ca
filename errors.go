package seamcarver

import "github.com/pkg/errors"

// ErrInvalidArgument is the root of every precondition failure reported by the Carver.
// The more specific errors below all match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNilImage          = errors.WithMessage(ErrInvalidArgument, "image is nil")
	ErrEmptyImage        = errors.WithMessage(ErrInvalidArgument, "image has no pixels")
	ErrOutOfRange        = errors.WithMessage(ErrInvalidArgument, "coordinate out of range")
	ErrNilSeam           = errors.WithMessage(ErrInvalidArgument, "seam is nil or empty")
	ErrSeamLength        = errors.WithMessage(ErrInvalidArgument, "seam has the wrong length")
	ErrSeamRange         = errors.WithMessage(ErrInvalidArgument, "seam entry outside the image")
	ErrSeamNotAdjacent   = errors.WithMessage(ErrInvalidArgument, "adjacent seam entries differ by more than 1")
	ErrDimensionTooSmall = errors.WithMessage(ErrInvalidArgument, "dimension already reduced to 1px")
)

// ErrEnlargeUnsupported is returned by the Processor when the target size exceeds the source size.
var ErrEnlargeUnsupported = errors.New("seam insertion is not supported: target size exceeds image size")
