package parser

import (
	"regexp"
	"strconv"
	"time"
)

var (
	fullDateRe = regexp.MustCompile(`^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})`)
	monthDayRe = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})`)
	kanjiMDRe  = regexp.MustCompile(`(\d{1,2})月(\d{1,2})`)
)

// parseDateLine recognizes a date line in any of the accepted shapes:
// 2026/01/16, 2026-01-16, 1/16(火), 01-16, 1月16日. Weekday suffixes and
// brackets survive because only the digits are matched. Bare month/day
// forms get the year fixed up against the receipt date.
func (p *Parser) parseDateLine(line string, receivedAt time.Time) (time.Time, bool) {
	s := squash(normalizeLine(line))

	if m := fullDateRe.FindStringSubmatch(s); m != nil {
		return time.Date(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]), 0, 0, 0, 0, p.loc), true
	}

	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		return p.fixYear(receivedAt, atoi(m[1]), atoi(m[2])), true
	}

	if m := kanjiMDRe.FindStringSubmatch(s); m != nil {
		return p.fixYear(receivedAt, atoi(m[1]), atoi(m[2])), true
	}

	return time.Time{}, false
}

// fixYear resolves a bare month/day against the message's receipt date.
// Senders write dates without a year; around new year the receipt year can
// be off by one in either direction. More than futureDayLimit days ahead of
// receipt means the work day already rolled into the sender's past year;
// more than 300 days behind means a just-crossed year boundary pointing
// forward.
func (p *Parser) fixYear(receivedAt time.Time, month, day int) time.Time {
	base := receivedAt.In(p.loc)
	year := base.Year()
	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.loc)

	diff := candidate.Sub(base).Hours() / 24

	if diff > float64(p.futureDayLimit) {
		return time.Date(year-1, time.Month(month), day, 0, 0, 0, 0, p.loc)
	}
	if diff < -300 {
		return time.Date(year+1, time.Month(month), day, 0, 0, 0, 0, p.loc)
	}
	return candidate
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
