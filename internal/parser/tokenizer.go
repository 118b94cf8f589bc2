package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/pkg/validator"
)

// Shorthand vocabulary shared by block directives and per-worker status
// tokens.
var (
	halfDayWords = []string{"半日", "半", "半勤", "午前", "午後", "午前のみ", "午後のみ", "am", "pm", "半日勤務"}
	fullDayWords = []string{"一日", "1日", "全日"}
)

var (
	numberRe     = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	dayQtyRe     = regexp.MustCompile(`^([0-9]+(\.[0-9]+)?)(日|day)$`)
	bareOrDayRe  = regexp.MustCompile(`^([0-9]+(\.[0-9]+)?)\s*(日|day)?$`)
	labeledQtyRe = regexp.MustCompile(`^(人工|稼働)\s*([0-9]+(\.[0-9]+)?)$`)
	zangyoRe     = regexp.MustCompile(`^残業([0-9]+(\.[0-9]+)?)(h|時間)?$`)
	zanRe        = regexp.MustCompile(`^残([0-9]+(\.[0-9]+)?)$`)
	plusHoursRe  = regexp.MustCompile(`^\+?([0-9]+(\.[0-9]+)?)h$`)
	otRe         = regexp.MustCompile(`^ot([0-9]+(\.[0-9]+)?)h?$`)
	overtimeRe   = regexp.MustCompile(`^overtime([0-9]+(\.[0-9]+)?)h?$`)
	nameTokenRe  = regexp.MustCompile(`^[一-龥々ぁ-んァ-ヶ]{1,12}$`)
)

// statusToken is a recognized per-worker shorthand: a quantity, an overtime
// value, or (never both at once in practice) either.
type statusToken struct {
	qty *float64
	ot  *float64
}

func parseNumber(s string) (float64, bool) {
	if !numberRe.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseStatusToken classifies a single token. Bare numbers are not status
// tokens here; a quantity needs the 日/day suffix so it cannot collide with
// the bare-number quantity path.
func parseStatusToken(token string) *statusToken {
	raw := strings.TrimSpace(strings.ToLower(normalizeLine(token)))
	s := squash(raw)

	if validator.IsInSlice(raw, halfDayWords) {
		q := 0.5
		return &statusToken{qty: &q}
	}

	if m := dayQtyRe.FindStringSubmatch(s); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &statusToken{qty: &v}
		}
	}

	for _, re := range []*regexp.Regexp{zangyoRe, zanRe, plusHoursRe, otRe, overtimeRe} {
		if m := re.FindStringSubmatch(s); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				return &statusToken{ot: &v}
			}
		}
	}

	return nil
}

// isNameToken reports whether the token looks like a worker name: CJK
// characters, at most 12, and not itself a shorthand.
func isNameToken(token string) bool {
	if token == "" {
		return false
	}
	if parseStatusToken(token) != nil {
		return false
	}
	return nameTokenRe.MatchString(token)
}

// parseQuantityDirective recognizes a line that is nothing but a quantity,
// applied as a block default to the whole current site block.
func parseQuantityDirective(line string) (float64, bool) {
	raw := strings.TrimSpace(strings.ToLower(normalizeLine(line)))
	s := squash(raw)

	if validator.IsInSlice(raw, halfDayWords) {
		return 0.5, true
	}
	if validator.IsInSlice(raw, fullDayWords) {
		return 1.0, true
	}

	if m := bareOrDayRe.FindStringSubmatch(s); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return v, true
		}
	}

	if m := labeledQtyRe.FindStringSubmatch(s); m != nil {
		if v, ok := parseNumber(m[2]); ok {
			return v, true
		}
	}

	return 0, false
}

// parseOvertimeDirective recognizes a line that is nothing but an overtime
// shorthand, applied as a block default.
func parseOvertimeDirective(line string) (float64, bool) {
	s := squash(strings.ToLower(normalizeLine(line)))

	for _, re := range []*regexp.Regexp{zangyoRe, zanRe, plusHoursRe, otRe, overtimeRe} {
		if m := re.FindStringSubmatch(s); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				return v, true
			}
		}
	}

	return 0, false
}

// parseClientSite splits a client line into client name, contract type and,
// when a / or | separator is present, the site fragment after it.
func parseClientSite(line string) (client, workType, site string) {
	normalized := strings.TrimSpace(spaceRe.ReplaceAllString(normalizeLine(line), " "))

	clientPart := normalized
	if separatorRe.MatchString(normalized) {
		var parts []string
		for _, p := range separatorRe.Split(normalized, -1) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			clientPart = parts[0]
			site = strings.Join(parts[1:], " / ")
		}
	}

	if strings.Contains(clientPart, record.WorkTypeRegular) {
		workType = record.WorkTypeRegular
	}
	if strings.Contains(clientPart, record.WorkTypeContract) {
		workType = record.WorkTypeContract
	}

	client = clientPart
	client = strings.ReplaceAll(client, record.WorkTypeRegular, "")
	client = strings.ReplaceAll(client, record.WorkTypeContract, "")
	client = strings.TrimSpace(spaceRe.ReplaceAllString(client, " "))

	return client, workType, site
}
