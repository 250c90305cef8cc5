// Package timezone holds the pure time conversions behind the bulk shift
// endpoint, kept free of the store so they are testable in isolation.
package timezone

import (
	"time"
	// Embed the zone database so lookups work in containers without tzdata.
	_ "time/tzdata"
)

// Load resolves an IANA timezone name. The error tells the caller the name
// is not a recognized identifier.
func Load(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

// Reinterpret reads t's wall-clock fields, treats them as local time in src,
// and returns that instant expressed in dst. This is a reinterpretation
// followed by a conversion, not a relabeling: the underlying instant moves by
// the offset between t's original frame and src.
func Reinterpret(t time.Time, src, dst *time.Location) time.Time {
	reinterpreted := time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		src,
	)
	return reinterpreted.In(dst)
}
