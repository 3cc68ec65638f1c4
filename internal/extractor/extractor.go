package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"ess-chatbot/pkg/datemath"
)

// DefaultDurationDays applies when a query names no duration.
const DefaultDurationDays = 1

const monthAlternation = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

// "may" doubles as a modal verb; month extraction tolerates that noise
// because month mentions only scope history and payslip lookups.

var (
	reFindDayMonth = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthAlternation + `)\b`)
	reFindMonthDay = regexp.MustCompile(`\b(` + monthAlternation + `)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	reFindISO      = regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`)
	reFindSlash    = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)
	reFindRelative = regexp.MustCompile(`\b(today|tomorrow|yesterday)\b`)
	reFindRelMath  = regexp.MustCompile(`\b(?:in \d+ (?:days?|weeks?|months?)|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`)
	reFindMonth    = regexp.MustCompile(`\b(` + monthAlternation + `)\b`)

	reDays  = regexp.MustCompile(`\b(\d+)\s*(?:days?|d)\b`)
	reWeeks = regexp.MustCompile(`\b(\d+)\s*weeks?\b`)

	rePhone = regexp.MustCompile(`(?:\+?91)?([6-9]\d{9})`)
)

// leaveKeywords maps query keywords to canonical leave categories.
// Checked in order so specific phrases win over generic ones. Word
// boundaries keep "ill" from firing inside "will" or "bill".
var leaveKeywords = []struct {
	pattern  *regexp.Regexp
	leavType string
}{
	{regexp.MustCompile(`\bsick\b`), "sick"},
	{regexp.MustCompile(`\billness\b`), "sick"},
	{regexp.MustCompile(`\bill\b`), "sick"},
	{regexp.MustCompile(`\bunwell\b`), "sick"},
	{regexp.MustCompile(`\bmedical\b`), "sick"},
	{regexp.MustCompile(`\bcasual\b`), "casual"},
	{regexp.MustCompile(`\bday off\b`), "casual"},
	{regexp.MustCompile(`\bearned\b`), "earned"},
	{regexp.MustCompile(`\bannual\b`), "earned"},
	{regexp.MustCompile(`\bvacation\b`), "earned"},
	{regexp.MustCompile(`\bprivilege\b`), "earned"},
	{regexp.MustCompile(`\bmaternity\b`), "maternity"},
	{regexp.MustCompile(`\bpaternity\b`), "paternity"},
	{regexp.MustCompile(`\bwithout pay\b`), "unpaid"},
	{regexp.MustCompile(`\bunpaid\b`), "unpaid"},
	{regexp.MustCompile(`\blwp\b`), "unpaid"},
	{regexp.MustCompile(`\bemergency\b`), "emergency"},
	{regexp.MustCompile(`\burgent\b`), "emergency"},
}

// Extractor pulls dates, durations, leave categories, phone numbers and
// month mentions out of raw query text with fixed rules. It never fails:
// unparseable slots come back absent.
type Extractor struct {
	parser *datemath.Parser
	now    func() time.Time
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithClock overrides the reference clock, used in tests to pin the
// year inferred for dates like "15 January".
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// New creates an Extractor around the given date parser.
func New(parser *datemath.Parser, opts ...Option) *Extractor {
	e := &Extractor{
		parser: parser,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs every slot rule over the query. Total by contract: any
// malformed fragment yields an absent slot, never an error.
func (e *Extractor) Extract(query string) Entities {
	lower := strings.ToLower(query)

	return Entities{
		Date:         e.extractDate(lower),
		DurationDays: extractDuration(lower),
		LeaveType:    extractLeaveType(lower),
		PhoneNumber:  extractPhone(query),
		Months:       extractMonths(lower),
	}
}

// extractDate finds the first date-like fragment and normalizes it.
// Absolute forms are tried before relative words and date math
// ("in 3 days", "next monday") so "tomorrow 15 January" keeps the
// explicit date.
func (e *Extractor) extractDate(lower string) *time.Time {
	var fragment string

	switch {
	case reFindISO.MatchString(lower):
		fragment = reFindISO.FindString(lower)
	case reFindSlash.MatchString(lower):
		fragment = reFindSlash.FindString(lower)
	case reFindDayMonth.MatchString(lower):
		fragment = reFindDayMonth.FindString(lower)
	case reFindMonthDay.MatchString(lower):
		fragment = reFindMonthDay.FindString(lower)
	case reFindRelative.MatchString(lower):
		fragment = reFindRelative.FindString(lower)
	case reFindRelMath.MatchString(lower):
		t, err := e.parser.Parse(reFindRelMath.FindString(lower), e.now())
		if err != nil {
			return nil
		}
		return &t
	default:
		return nil
	}

	t, err := e.parser.ParseDate(fragment, e.now())
	if err != nil {
		return nil
	}
	return &t
}

func extractDuration(lower string) int {
	if m := reDays.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if m := reWeeks.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n * 7
		}
	}
	return DefaultDurationDays
}

func extractLeaveType(lower string) string {
	for _, kw := range leaveKeywords {
		if kw.pattern.MatchString(lower) {
			return kw.leavType
		}
	}
	return ""
}

// extractPhone finds an Indian mobile number, tolerating spaces and
// dashes between digits, and normalizes it to +91-XXXXXXXXXX.
func extractPhone(query string) string {
	compact := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(query)
	m := rePhone.FindStringSubmatch(compact)
	if m == nil {
		return ""
	}
	return "+91-" + m[1]
}

func extractMonths(lower string) []string {
	seen := make(map[string]bool)
	var months []string
	for _, m := range reFindMonth.FindAllString(lower, -1) {
		canonical := canonicalMonth(m)
		if !seen[canonical] {
			seen[canonical] = true
			months = append(months, canonical)
		}
	}
	return months
}

var monthFull = map[string]string{
	"jan": "january", "feb": "february", "mar": "march", "apr": "april",
	"jun": "june", "jul": "july", "aug": "august", "sep": "september",
	"oct": "october", "nov": "november", "dec": "december",
}

func canonicalMonth(m string) string {
	if full, ok := monthFull[m]; ok {
		return full
	}
	return m
}
