// Package contract declares every REST operation of the panel once.
//
// Each Route names an operation and fixes its HTTP method, chi-style path
// template, request type and the response type per status code. The API
// router mounts handlers by route name, the Go client issues requests by
// route name, and the gen-types command turns the same Go types into the
// TypeScript declarations the web UI compiles against. Changing a request
// or response type here changes all three consumers at once.
//
// Request types carry go-playground/validator tags; Validate is the single
// validation gate used before any handler touches the store.
package contract
