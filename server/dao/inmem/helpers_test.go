package inmem

import (
	"testing"

	"github.com/google/uuid"
)

func mustRandomUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	if err != nil {
		t.Fatalf("could not generate UUID: %v", err)
	}
	return id
}
