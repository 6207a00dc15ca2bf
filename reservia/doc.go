// Package reservia fetches and parses VIA Rail's train status pages.
//
// The upstream is the reservia.viarail.ca GetTrainStatus endpoint, an HTML
// page carrying one table row per station with scheduled, estimated and
// actual times. Time information is only published for the Windsor-Quebec
// City corridor; trains outside it, unknown train numbers and dates outside
// the publication window all come back as ErrTripNotFound.
package reservia
