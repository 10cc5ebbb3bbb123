package validation

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Result is the outcome of validating one raw payload.
type Result struct {
	Valid   bool
	Message string
}

var allowedBookFields = map[string]struct{}{
	"title":      {},
	"author":     {},
	"totalPages": {},
}

var allowedLogFields = map[string]struct{}{
	"date":      {},
	"pagesRead": {},
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateBookPayload checks a raw book payload against the field whitelist
// and type rules. Payloads with keys outside the whitelist are rejected
// outright so client bugs surface early instead of fields being dropped.
func ValidateBookPayload(payload map[string]interface{}) Result {
	if payload == nil {
		return invalid("Invalid payload")
	}

	for key := range payload {
		if _, ok := allowedBookFields[key]; !ok {
			return invalid("Unexpected fields in payload")
		}
	}

	title, ok := payload["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return invalid("title is required and must be a non-empty string")
	}

	if !isPositiveInteger(payload["totalPages"]) {
		return invalid("totalPages is required and must be a positive integer")
	}

	if author, present := payload["author"]; present && author != nil {
		if _, ok := author.(string); !ok {
			return invalid("author must be a string if provided")
		}
	}

	return Result{Valid: true}
}

// ValidateLogPayload checks a raw reading-log payload: keys restricted to
// date and pagesRead, date a real calendar date, pagesRead a positive integer.
func ValidateLogPayload(payload map[string]interface{}) Result {
	if payload == nil {
		return invalid("Invalid payload")
	}

	for key := range payload {
		if _, ok := allowedLogFields[key]; !ok {
			return invalid("Unexpected fields in payload")
		}
	}

	date, ok := payload["date"].(string)
	if !ok || !IsCalendarDate(date) {
		return invalid("date is required and must be a valid calendar date in YYYY-MM-DD format")
	}

	if !isPositiveInteger(payload["pagesRead"]) {
		return invalid("pagesRead is required and must be a positive integer")
	}

	return Result{Valid: true}
}

// IsCalendarDate reports whether s is a real calendar date in YYYY-MM-DD
// form. The round-trip through time catches shapes like 2024-02-30 that
// match the pattern but name no actual day.
func IsCalendarDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == s
}

// maxPageCount caps page counters. JSON numbers arrive as float64, which can
// carry integral values like 1e300 that overflow int on conversion; anything
// past this bound is rejected as invalid rather than silently wrapping.
const maxPageCount = math.MaxInt32

// isPositiveInteger accepts the numeric shapes a decoded JSON body or a
// merged update candidate can carry.
func isPositiveInteger(v interface{}) bool {
	switch n := v.(type) {
	case float64:
		return n > 0 && n <= maxPageCount && n == math.Trunc(n)
	case int:
		return n > 0 && n <= maxPageCount
	case int64:
		return n > 0 && n <= maxPageCount
	default:
		return false
	}
}

func invalid(message string) Result {
	return Result{Valid: false, Message: message}
}
