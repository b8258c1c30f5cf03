// Package defaults centralizes timeout and limit constants shared across
// the service so that tuning happens in one place.
package defaults
