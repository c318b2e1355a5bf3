package repository

import "errors"

// ErrNotFound is returned by all repositories when a lookup resolves no
// document. Mongo implementations normalize mongo.ErrNoDocuments to it so
// that callers never depend on driver error values.
var ErrNotFound = errors.New("not found")
