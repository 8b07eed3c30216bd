package status

import "errors"

var (
	// StatusError indicates a failure of an operation.
	StatusError = errors.New("operation failed")

	// StatusInvalidArg indicates that an operation can't be performed due to invalid argument.
	StatusInvalidArg = errors.New("invalid argument")

	// StatusNoData indicates that the requested data doesn't exist.
	StatusNoData = errors.New("no data")
)
