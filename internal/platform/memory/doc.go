// Package memory provides a process-local implementation of store.BookStore.
// Records live for the lifetime of the process only.
package memory
