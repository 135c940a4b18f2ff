// Package fault defines the closed set of failure types used across the
// physics core. Callers match on them with errors.As; no other error
// kinds escape the core's operations.
package fault

import "fmt"

// Kind discriminates the failure variants. The set is closed: adding a
// variant means updating every switch over Kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindSchemaViolation
	KindConstraintViolation
	KindNotFound
	KindTemporalAnomaly
	KindInvalidTransition
)

// SchemaViolation reports a raw value that failed a validating
// constructor (NaN/Inf, out of range, non-positive where required).
type SchemaViolation struct {
	Message string
	Issue   string
}

func (e *SchemaViolation) Error() string {
	if e.Issue == "" {
		return e.Message
	}
	return e.Message + ": " + e.Issue
}

// ConstraintViolation reports a combination that passes numeric checks
// but breaks a domain rule, e.g. a zero-length gravity direction.
type ConstraintViolation struct {
	Message string
}

func (e *ConstraintViolation) Error() string {
	return e.Message
}

// NotFound reports a repository lookup miss.
type NotFound struct {
	Entity    string
	Reference string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Reference)
}

// TemporalAnomaly reports a clock-ordering violation. Declared for the
// taxonomy; no current operation raises it.
type TemporalAnomaly struct {
	Now       int64
	Attempted int64
}

func (e *TemporalAnomaly) Error() string {
	return fmt.Sprintf("temporal anomaly: attempted %d at %d", e.Attempted, e.Now)
}

// InvalidTransition reports an illegal state-machine transition.
// Declared for the taxonomy; Start/Stop currently treat repeats as
// no-ops instead of raising it.
type InvalidTransition struct {
	Message string
}

func (e *InvalidTransition) Error() string {
	return e.Message
}

// KindOf classifies an error produced by this package. Errors from
// elsewhere report KindUnknown.
func KindOf(err error) Kind {
	switch err.(type) {
	case *SchemaViolation:
		return KindSchemaViolation
	case *ConstraintViolation:
		return KindConstraintViolation
	case *NotFound:
		return KindNotFound
	case *TemporalAnomaly:
		return KindTemporalAnomaly
	case *InvalidTransition:
		return KindInvalidTransition
	default:
		return KindUnknown
	}
}
