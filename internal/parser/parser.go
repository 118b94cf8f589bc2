// Package parser turns free-form site attendance messages into structured
// rows. Messages follow a loose convention: a date line opens a block, a
// client line (optionally carrying the site after a / or |) and a site line
// follow, then worker lines until the next date line. Anything that fits no
// known shape is skipped, never fatal.
package parser

import (
	"regexp"
	"strings"
	"time"
)

// Row is one worker-day candidate in message order. Key assignment and
// persistence belong to the caller.
type Row struct {
	Date          time.Time
	Client        string
	WorkType      string
	Site          string
	WorkerName    string
	Quantity      float64
	OvertimeHours float64
}

type Parser struct {
	futureDayLimit int
	loc            *time.Location
}

func New(futureDayLimit int, loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{futureDayLimit: futureDayLimit, loc: loc}
}

// parser states
type state int

const (
	seekingDate state = iota
	expectClient
	expectSite
	readyForWorkers
)

var lineBreakRe = regexp.MustCompile(`\r\n|\r|\n`)

// Parse consumes a whole message and returns its attendance rows. The same
// text always yields the same rows in the same order.
func (p *Parser) Parse(text string, receivedAt time.Time) []Row {
	var rows []Row

	st := seekingDate
	var curDate time.Time
	var curClient, curWorkType, curSite string

	// Block defaults declared once and applied to the whole site block,
	// including rows already emitted.
	var blockQty, blockOt *float64
	blockStart := 0

	for _, raw := range lineBreakRe.Split(text, -1) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// A date line always starts a new block, whatever the state.
		if d, ok := p.parseDateLine(line, receivedAt); ok {
			curDate = d
			curClient, curWorkType, curSite = "", "", ""
			blockQty, blockOt = nil, nil
			st = expectClient
			continue
		}
		if st == seekingDate || curDate.IsZero() {
			continue
		}

		switch st {
		case expectClient:
			client, workType, site := parseClientSite(line)
			curClient, curWorkType = client, workType
			if site != "" {
				curSite = site
				st = readyForWorkers
				blockStart = len(rows)
				blockQty, blockOt = nil, nil
			} else {
				st = expectSite
			}
			continue

		case expectSite:
			curSite = line
			st = readyForWorkers
			blockStart = len(rows)
			blockQty, blockOt = nil, nil
			continue
		}

		// readyForWorkers from here on.

		if qty, ok := parseQuantityDirective(line); ok {
			blockQty = &qty
			for i := blockStart; i < len(rows); i++ {
				rows[i].Quantity = qty
			}
			continue
		}

		if ot, ok := parseOvertimeDirective(line); ok {
			blockOt = &ot
			for i := blockStart; i < len(rows); i++ {
				rows[i].OvertimeHours = ot
			}
			continue
		}

		for _, w := range parseWorkerLine(line) {
			qty := 1.0
			switch {
			case w.qty != nil:
				qty = *w.qty
			case blockQty != nil:
				qty = *blockQty
			}

			ot := 0.0
			switch {
			case w.ot != nil:
				ot = *w.ot
			case blockOt != nil:
				ot = *blockOt
			}

			rows = append(rows, Row{
				Date:          curDate,
				Client:        curClient,
				WorkType:      curWorkType,
				Site:          curSite,
				WorkerName:    w.name,
				Quantity:      qty,
				OvertimeHours: ot,
			})
		}
	}

	return rows
}

// workerEntry is one worker found on a line, with any explicit per-worker
// quantity or overtime.
type workerEntry struct {
	name string
	qty  *float64
	ot   *float64
}

// parseWorkerLine handles mixed-order worker lines: status shorthands may
// precede the name they belong to (held pending, applied to the next name)
// or follow it (applied to the most recent name). Bare numbers count as
// explicit quantities. A line with no recognizable name yields nothing.
func parseWorkerLine(line string) []workerEntry {
	tokens := tokenizeWorkerLine(line)
	if len(tokens) == 0 {
		return nil
	}

	var workers []workerEntry
	var current *workerEntry
	var pendingQty, pendingOt *float64

	for _, tok := range tokens {
		if st := parseStatusToken(tok); st != nil {
			if current != nil {
				if st.qty != nil {
					current.qty = st.qty
				}
				if st.ot != nil {
					current.ot = st.ot
				}
			} else {
				if st.qty != nil {
					pendingQty = st.qty
				}
				if st.ot != nil {
					pendingOt = st.ot
				}
			}
			continue
		}

		if isNameToken(tok) {
			if current != nil {
				workers = append(workers, *current)
			}
			current = &workerEntry{name: tok, qty: pendingQty, ot: pendingOt}
			pendingQty, pendingOt = nil, nil
			continue
		}

		if v, ok := parseNumber(tok); ok {
			if current != nil {
				current.qty = &v
			} else {
				pendingQty = &v
			}
		}
	}

	if current != nil {
		workers = append(workers, *current)
	}

	return workers
}
