package types

import "errors"

// Reconciler and decoder errors (prd001-notebook-core R7).
var (
	// ErrShapeMismatch reports a table whose rows do not line up with its
	// field dictionary. This is a provider-side configuration error.
	ErrShapeMismatch = errors.New("table shape does not match field dictionary")

	// ErrMissingField reports a wave-note decode attempted on channel
	// metadata lacking Set Sweep Count or Stim Wave Note.
	ErrMissingField = errors.New("required notebook field not present")

	// ErrBadVersion reports a Version line whose numeric literal cannot be
	// parsed. Decoding fails loudly rather than guessing at the schema.
	ErrBadVersion = errors.New("unparsable wave note version")
)

// Provider errors (prd003-table-provider R2).
var (
	// ErrMissingDataset reports an input document lacking one of the key or
	// value datasets the provider contract requires.
	ErrMissingDataset = errors.New("notebook dataset missing")
)

// Store errors (prd002-sqlite-store R5).
var (
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrStoreDetached   = errors.New("store is not attached")
	ErrRunNotFound     = errors.New("run not found")
	ErrSweepNotFound   = errors.New("sweep not found")
)

// Config validation errors (prd002-sqlite-store R1.2).
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
