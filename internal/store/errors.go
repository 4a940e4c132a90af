package store

import (
	"errors"
)

var (
	// ErrStorageUnavailable is returned when the storage location can not be
	// created or a connection can not be opened.
	ErrStorageUnavailable = errors.New("settings storage unavailable")

	// ErrSchema is returned when the settings table can not be created.
	ErrSchema = errors.New("settings schema setup failed")

	// ErrData is returned when reading or writing settings rows fails.
	ErrData = errors.New("settings data access failed")

	// ErrSuffixNotFound is returned when an update affected zero rows,
	// meaning the name suffix row was missing.
	ErrSuffixNotFound = errors.New("name suffix setting not found")
)
