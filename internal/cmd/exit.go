package cmd

import (
	"errors"

	gerrors "github.com/gmrepo/cli/internal/errors"
)

// Exit codes reported by the gmrepo binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flags or arguments.
	ExitValidationError = 2

	// ExitConnectivityError indicates the GMrepo API could not be reached.
	ExitConnectivityError = 3

	// ExitAPIError indicates the API returned a non-success response.
	ExitAPIError = 4

	// ExitNotFound indicates the requested entity was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConnectivityError:
		return "Connectivity Error"
	case ExitAPIError:
		return "API Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *gerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, gerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, gerrors.ErrConnectivity):
		return ExitConnectivityError
	case errors.Is(err, gerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, gerrors.ErrAPI):
		return ExitAPIError
	default:
		return ExitGeneralError
	}
}
