package fault

import (
	"errors"
	"testing"
)

func TestKindOfClassifiesEveryVariant(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{&SchemaViolation{Message: "bad value"}, KindSchemaViolation},
		{&ConstraintViolation{Message: "bad combination"}, KindConstraintViolation},
		{&NotFound{Entity: "PhysicsWorld", Reference: "world-1"}, KindNotFound},
		{&TemporalAnomaly{Now: 10, Attempted: 5}, KindTemporalAnomaly},
		{&InvalidTransition{Message: "already running"}, KindInvalidTransition},
		{errors.New("something else"), KindUnknown},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.kind {
			t.Errorf("Expected kind %v for %T, got %v", c.kind, c.err, got)
		}
	}
}

func TestSchemaViolationMessage(t *testing.T) {
	e := &SchemaViolation{Message: "positive float required", Issue: "got -1"}
	if e.Error() != "positive float required: got -1" {
		t.Errorf("Unexpected message: %q", e.Error())
	}
	bare := &SchemaViolation{Message: "positive float required"}
	if bare.Error() != "positive float required" {
		t.Errorf("Unexpected message without issue: %q", bare.Error())
	}
}

func TestNotFoundMessageNamesEntityAndReference(t *testing.T) {
	e := &NotFound{Entity: "RigidBody", Reference: "body-42"}
	if e.Error() != "RigidBody not found: body-42" {
		t.Errorf("Unexpected message: %q", e.Error())
	}
}
