// Package repository owns the music catalog: the five entity tables,
// their identifier allocation, seeding of reference data, and the
// insert/lookup/delete operations callers use. The sentinel errors
// below let callers distinguish the failure classes the store
// reports. ErrNotFound is a normal lookup result, not a failure;
// handlers upstream should never log it as an error.
package repository

import (
	"errors"
	"fmt"
)

// ErrStorageInit is returned when the storage substrate or its tables
// cannot be created. It is fatal to the caller and never retried
// internally.
var ErrStorageInit = errors.New("storage initialization failed")

// ErrReferentialIntegrity is returned when an insert references a row
// that does not exist and auto-creation does not apply (e.g. an
// unknown genre id on an artist, or an unknown venue id on a show).
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// ErrStorage is the generic wrapper for I/O or constraint failures;
// storageError attaches the name of the failing operation.
var ErrStorage = errors.New("storage operation failed")

// ErrNotFound is returned by lookups that miss. Store methods
// translate the substrate's own not-found values (gorm.ErrRecordNotFound,
// sql.ErrNoRows) into this sentinel so callers depend on one value.
var ErrNotFound = errors.New("record not found")

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
