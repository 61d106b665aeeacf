// Package service contains the account use cases: registering users, creating
// administrators and authenticating credentials into signed tokens.
//
// Trail and park handlers talk to their stores directly; only the flows that
// combine a store with password hashing and token issuance live here.
// Dependencies are injected through constructors and errors are returned as
// sentinels the API layer maps to HTTP status codes.
package service
