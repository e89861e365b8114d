package core

import "errors"

// Error taxonomy. Every failure leaving the gateway wraps one of these so the
// command boundary can classify it with errors.Is before rendering it as a
// string for the front-end.
var (
	// ErrPathResolution means the OS could not supply an application data directory.
	ErrPathResolution = errors.New("path resolution failed")

	// ErrPersistence covers directory creation and file I/O failures.
	ErrPersistence = errors.New("persistence failed")

	// ErrSerialization means a record could not be encoded to JSON.
	ErrSerialization = errors.New("serialization failed")

	// ErrDeserialization means a persisted file exists but its content does not decode.
	ErrDeserialization = errors.New("deserialization failed")

	// ErrFileRead means a user-selected file could not be read as UTF-8 text.
	ErrFileRead = errors.New("file read failed")

	// ErrNotFound means no record is stored under the requested identifier.
	ErrNotFound = errors.New("record not found")
)
