package pastebin

import "time"

// Lifespan is a paste expiration code as the service defines them.
type Lifespan string

const (
	LifespanNever     Lifespan = "N"
	Lifespan10Minutes Lifespan = "10M"
	Lifespan1Hour     Lifespan = "1H"
	Lifespan1Day      Lifespan = "1D"
	Lifespan1Week     Lifespan = "1W"
	Lifespan2Weeks    Lifespan = "2W"
	Lifespan1Month    Lifespan = "1M"
	Lifespan6Months   Lifespan = "6M"
	Lifespan1Year     Lifespan = "1Y"
)

// lifespanDurations maps each expiration code to its fixed offset. The
// service rounds months and years to whole day counts. LifespanNever
// carries no offset.
var lifespanDurations = map[Lifespan]time.Duration{
	LifespanNever:     0,
	Lifespan10Minutes: 10 * time.Minute,
	Lifespan1Hour:     time.Hour,
	Lifespan1Day:      24 * time.Hour,
	Lifespan1Week:     7 * 24 * time.Hour,
	Lifespan2Weeks:    14 * 24 * time.Hour,
	Lifespan1Month:    30 * 24 * time.Hour,
	Lifespan6Months:   180 * 24 * time.Hour,
	Lifespan1Year:     365 * 24 * time.Hour,
}

// Valid reports whether l is one of the nine recognized expiration codes.
func (l Lifespan) Valid() bool {
	_, ok := lifespanDurations[l]
	return ok
}

// Duration returns the expiry offset for l. The second return is false for
// LifespanNever and for unrecognized codes, which have no offset.
func (l Lifespan) Duration() (time.Duration, bool) {
	d, ok := lifespanDurations[l]
	if !ok || d == 0 {
		return 0, false
	}
	return d, true
}
