package feed

import (
	"strings"

	"casetracker/internal/models"
)

// KeySeparator joins the segments of a feed key.
const KeySeparator = "|"

// keySegments is the number of segments in a well-formed key:
// center|year|day|code|form|status|updateDay.
const keySegments = 7

// DecodeKey splits a feed key into a case entry without a count.
// Keys with missing trailing segments leave those fields empty and keys with
// extra segments drop them; ok is false in both cases.
func DecodeKey(key string) (models.CaseEntry, bool) {
	parts := strings.Split(key, KeySeparator)
	seg := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	entry := models.CaseEntry{
		Center:    seg(0),
		Year:      seg(1),
		Day:       seg(2),
		Code:      seg(3),
		Form:      seg(4),
		Status:    seg(5),
		UpdateDay: seg(6),
	}
	return entry, len(parts) == keySegments
}

// EncodeKey builds the feed key of an entry.
func EncodeKey(e models.CaseEntry) string {
	return strings.Join([]string{
		e.Center, e.Year, e.Day, e.Code, e.Form, e.Status, e.UpdateDay,
	}, KeySeparator)
}

// Decode converts parsed pairs into entries, in order. Malformed keys are
// still decoded; the number of them is returned for reporting.
func Decode(pairs []Pair) ([]models.CaseEntry, int) {
	entries := make([]models.CaseEntry, 0, len(pairs))
	malformed := 0
	for _, p := range pairs {
		entry, ok := DecodeKey(p.Key)
		if !ok {
			malformed++
		}
		entry.Count = p.Count
		entries = append(entries, entry)
	}
	return entries, malformed
}
