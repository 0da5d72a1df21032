package storage

import "errors"

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConcurrentUpdate is returned when a conditional write lost a race against another writer.
// Callers should re-read and re-validate before retrying.
var ErrConcurrentUpdate = errors.New("record was modified concurrently")

// ErrAlreadyExists is returned when creating a record whose key is already taken.
var ErrAlreadyExists = errors.New("record already exists")

// ErrAlreadyProcessed is returned when a payment confirmation finds the purchase already confirmed.
var ErrAlreadyProcessed = errors.New("purchase already processed")
