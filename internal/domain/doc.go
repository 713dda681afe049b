// Package domain contains the book entity and the validation rules shared by
// every layer, independent of storage or transport.
package domain
