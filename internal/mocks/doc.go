// Package mocks provides hand-written test doubles for the service and store
// interfaces. Each mock exposes function fields that override its behavior
// and falls back to canned values when a field is nil.
package mocks
