// Package menu defines the domain model for the Karlsruhe Mensa menu
// service and the HTTP handlers that serve it.
//
// All entities are ephemeral: a Document is reconstructed fresh per request
// from the upstream menu page and discarded after rendering. No menu data
// crosses requests.
package menu
