package command

import (
	"errors"
	"fmt"
	"log"
)

// Sentinel errors for every way a command can fail before or during its
// handler. Each maps to exactly one user-visible reply.
var (
	ErrUnknownCommand        = errors.New("unknown command")
	ErrContextRequired       = errors.New("this command can only be used in a server")
	ErrPermissionDenied      = errors.New("you do not have permission to use this command")
	ErrInsufficientHierarchy = errors.New("you cannot act on a member with an equal or higher role")
	ErrInvalidTarget         = errors.New("invalid target for this command")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrReferenceNotFound     = errors.New("the referenced entity could not be found")
	ErrExternalService       = errors.New("external service error")
	ErrConfigPersistence     = errors.New("failed to save settings")
)

// External logs the detailed cause of a failed outbound call and returns the
// bare sentinel, so the user sees a generic message while the log keeps the
// specifics.
func External(op string, err error) error {
	log.Printf("[ERR] %s failed: %v", op, err)
	return ErrExternalService
}

// Persistence logs a failed settings write and returns the bare sentinel.
func Persistence(op string, err error) error {
	log.Printf("[ERR] %s failed: %v", op, err)
	return ErrConfigPersistence
}

// InvalidArgumentf wraps ErrInvalidArgument with a user-facing detail.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// UserMessage maps a command error to the single reply shown to the invoker.
// External and persistence failures are reduced to generic text; everything
// else carries its own wording.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrExternalService):
		return "❌ Something went wrong talking to an external service. Please try again later."
	case errors.Is(err, ErrConfigPersistence):
		return "❌ Could not save your settings. Please try again later."
	default:
		return "❌ " + err.Error()
	}
}
