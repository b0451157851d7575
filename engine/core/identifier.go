package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	ownersMu sync.RWMutex
	owners   = map[uuid.UUID]interface{}{}
)

// IdentifierAcquireNewID hands out a fresh id and remembers who owns it.
func IdentifierAcquireNewID(owner interface{}) uuid.UUID {
	ownersMu.Lock()
	defer ownersMu.Unlock()

	id := uuid.New()
	owners[id] = owner
	return id
}

// IdentifierOwner returns the owner registered for id, if any.
func IdentifierOwner(id uuid.UUID) (interface{}, bool) {
	ownersMu.RLock()
	defer ownersMu.RUnlock()

	owner, ok := owners[id]
	return owner, ok
}

func IdentifierReleaseID(id uuid.UUID) error {
	ownersMu.Lock()
	defer ownersMu.Unlock()

	if _, ok := owners[id]; !ok {
		return fmt.Errorf("%w: identifier %s was never acquired. Nothing was done", ErrInvalidArgument, id)
	}
	delete(owners, id)
	return nil
}
