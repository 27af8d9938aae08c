// Package types defines the entity model, the Store and Relate storage
// contracts, the create-then-verify CRUD protocol, the relationship
// short-circuit protocol, and the standard error taxonomy for the Backlog
// storage system.
package types
