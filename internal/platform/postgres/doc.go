// Package postgres provides the PostgreSQL implementation of store.BookStore
// together with the embedded schema migrations it depends on.
// Connections go through database/sql using the pgx stdlib driver.
package postgres
