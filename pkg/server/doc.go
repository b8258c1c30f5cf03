// Package server provides the HTTP serving layer: routing, middleware
// (request IDs, rate limiting, panic recovery, logging, metrics), health
// endpoints, and graceful shutdown. Domain handlers are supplied by the
// caller as a route map; the server itself carries no menu logic.
package server
