// Package api handles incoming HTTP requests for the trail, national park and
// user resources. Handlers decode and validate payloads, call the injected
// stores or services, and map results and errors onto HTTP responses.
package api
