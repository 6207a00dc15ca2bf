// Package station is a keyed lookup into static VIA Rail station reference
// data (code, name, coordinates, address). The data ships embedded in the
// binary; lookups are case-insensitive.
package station
