// Package testutils provides helpers shared by HTTP and service tests:
// minting bearer tokens against the test secret, executing requests against
// an http.Handler and decoding the JSON bodies the API returns.
package testutils
