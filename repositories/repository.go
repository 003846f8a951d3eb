// Package repositories is the domain query set: every read and write
// against the POS schema, expressed as parameterized SQL. Functions take
// the shared *gorm.DB handle; gorm scopes a pooled connection per
// statement and releases it on every exit path.
package repositories

import "errors"

// ErrNotFound marks an id with no matching row. Handlers translate it to
// a 404 instead of a 500.
var ErrNotFound = errors.New("record not found")
