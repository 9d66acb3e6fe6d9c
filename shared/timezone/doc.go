// Package timezone holds the clinic's location. Opening hours, slot grids and
// booking dates are all interpreted in it, while storage keeps absolute
// instants. The zone comes from APP_TIMEZONE as an IANA name such as
// "Europe/Berlin" and defaults to UTC.
package timezone
