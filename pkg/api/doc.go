// Package api assembles the menu service: it wires the upstream fetcher
// and parser into the menu handlers and runs them on the HTTP server.
package api
