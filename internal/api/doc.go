// Package api handles incoming HTTP requests, routing, and response
// formatting for the read-only deck preview server. It acts as an
// adapter between HTTP clients and the deck service, translating HTTP
// concerns to deck operations; it never writes to the deck file.
package api
