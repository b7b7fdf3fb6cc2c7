package notify

import (
	"math"
	"time"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// Due reports whether a daily/weekly subscription fires at the given
// UTC instant. The scheduler runs hourly; each subscription stores a
// preferred local hour and a UTC offset, and fires when
// preferredLocalHour - utcOffset, normalized into [0,24), lands in the
// current UTC hour. Half-hour zones normalize to a fractional hour and
// fire in the hour they fall into. Weekly subscriptions additionally
// require the subscriber's local weekday to match, accounting for the
// day rollover implied by the offset: a subscriber ahead of UTC may
// already be on the next local day.
//
// Immediate subscriptions are not handled here; the critical-alert job
// evaluates them on every run regardless of local hour.
func Due(sub *domain.Subscription, now time.Time) bool {
	switch sub.Frequency {
	case domain.FrequencyDaily:
		return hourDue(sub, now)
	case domain.FrequencyWeekly:
		return hourDue(sub, now) && weekdayDue(sub, now)
	default:
		return false
	}
}

// hourDue checks the preferred-hour equation against the current UTC hour
func hourDue(sub *domain.Subscription, now time.Time) bool {
	preferredUTC := math.Mod(float64(sub.LocalHour)-sub.UTCOffset, 24)
	if preferredUTC < 0 {
		preferredUTC += 24
	}
	return int(math.Floor(preferredUTC)) == now.UTC().Hour()
}

// weekdayDue checks the subscriber's local weekday against the preference
func weekdayDue(sub *domain.Subscription, now time.Time) bool {
	utc := now.UTC()

	// local hour before normalization tells us whether the offset
	// pushes the subscriber onto an adjacent calendar day
	localHour := float64(utc.Hour()) + sub.UTCOffset
	dayShift := 0
	if localHour >= 24 {
		dayShift = 1
	} else if localHour < 0 {
		dayShift = -1
	}

	localWeekday := (int(utc.Weekday()) + dayShift + 7) % 7
	return localWeekday == sub.Weekday
}

// Window returns the digest reporting window for a due subscription:
// [max(lastNotified, now-period), now]. Anchoring on the last
// successful notification prevents re-covering articles when the
// scheduler is invoked more often than once per period.
func Window(sub *domain.Subscription, now time.Time) (start, end time.Time) {
	period := 24 * time.Hour
	if sub.Frequency == domain.FrequencyWeekly {
		period = 7 * 24 * time.Hour
	}

	start = now.Add(-period)
	if sub.LastNotified.After(start) {
		start = sub.LastNotified
	}
	return start, now
}
