// Package reservation aggregates a decoded boarding pass, its trip and its
// stations into a single view.
package reservation
