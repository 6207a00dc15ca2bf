// Package formatter renders trips for humans and machines: a plain-text
// timetable table, a JSON snapshot document, and a one-paragraph summary.
// Rendering is a presentation concern; nothing here feeds back into the
// status derivation.
package formatter
