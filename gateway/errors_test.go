package gateway

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsPersistence(t *testing.T) {
	err := persistErr("select", TableRoutines, errors.New("connection refused"))

	if !IsPersistence(err) {
		t.Error("expected a gateway error to be recognised")
	}

	wrapped := fmt.Errorf("loading routines: %w", err)

	if !IsPersistence(wrapped) {
		t.Error("expected a wrapped gateway error to be recognised")
	}

	if IsPersistence(errors.New("something else")) {
		t.Error("expected an unrelated error to be rejected")
	}
}
