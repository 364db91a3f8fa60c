// Package outcome classifies domain errors for presentation layers. The
// core only decides the failure kind; mapping kinds to HTTP statuses, UI
// messages or exit codes belongs to the caller.
package outcome

import (
	"context"
	"errors"

	"github.com/openroster/roster-stats-service/internal/repository"
	"github.com/openroster/roster-stats-service/internal/service"
	"github.com/openroster/roster-stats-service/internal/validation"
)

// Kind is the failure category of a service result.
type Kind int

const (
	KindOK Kind = iota
	KindInvalid
	KindNotFound
	KindConflict
	KindPrecondition
	KindCanceled
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPrecondition:
		return "precondition"
	case KindCanceled:
		return "canceled"
	default:
		return "internal"
	}
}

// Payload is the transport-agnostic error envelope.
type Payload struct {
	Error       string                  `json:"error"`
	Message     string                  `json:"message,omitempty"`
	FieldErrors []validation.FieldError `json:"field_errors,omitempty"`
}

// DuplicateAssignmentKey is the field key carried by duplicate-assignment
// conflicts so clients can distinguish them from generic validation errors.
const DuplicateAssignmentKey = "DuplicateAssignment"

// MapError converts a service error into its kind and payload. Extend here
// as new categories emerge.
func MapError(err error) (Kind, Payload) {
	switch {
	case err == nil:
		return KindOK, Payload{Error: "ok"}

	case errors.Is(err, service.ErrMissingActor):
		return KindPrecondition, Payload{Error: "precondition_failed", Message: err.Error()}

	case errors.Is(err, service.ErrDuplicateAssignment):
		return KindConflict, Payload{
			Error:       "conflict",
			Message:     service.ErrDuplicateAssignment.Error(),
			FieldErrors: []validation.FieldError{{Field: DuplicateAssignmentKey, Message: service.ErrDuplicateAssignment.Error()}},
		}

	case errors.Is(err, service.ErrInvalidInput):
		return KindInvalid, Payload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}

	case errors.Is(err, repository.ErrNotFound):
		// The wrapped message names the missing entity and id.
		return KindNotFound, Payload{Error: "not_found", Message: err.Error()}

	case errors.Is(err, repository.ErrAlreadyExists), errors.Is(err, repository.ErrConflict):
		return KindConflict, Payload{Error: "conflict"}

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled, Payload{Error: "canceled"}

	default:
		// service.ErrUnavailable and anything unrecognized: keep the message
		// generic, the real cause was logged at the service boundary.
		return KindInternal, Payload{Error: "internal_error", Message: service.ErrUnavailable.Error()}
	}
}
