// Package models defines the records owned by the entity store and the
// inputs used to create them. Records are plain data; the store hands out
// copies, never references to its own state.
package models
