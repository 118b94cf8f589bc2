package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParser() *Parser {
	return New(30, time.UTC)
}

func TestParse_BasicMessage(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16(火)\n恵興業 常用 / 追浜造船所\n田中 半日\n鈴木 残業1"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 2)

	assert.Equal(t, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "恵興業", rows[0].Client)
	assert.Equal(t, "常用", rows[0].WorkType)
	assert.Equal(t, "追浜造船所", rows[0].Site)
	assert.Equal(t, "田中", rows[0].WorkerName)
	assert.Equal(t, 0.5, rows[0].Quantity)
	assert.Equal(t, 0.0, rows[0].OvertimeHours)

	assert.Equal(t, "鈴木", rows[1].WorkerName)
	assert.Equal(t, 1.0, rows[1].Quantity)
	assert.Equal(t, 1.0, rows[1].OvertimeHours)
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n大成建設 請負｜横須賀北倉庫\n田中 鈴木 佐藤\n残業1.5"

	first := p.Parse(text, receivedAt)
	second := p.Parse(text, receivedAt)
	assert.Equal(t, first, second)
}

func TestParse_SiteOnSeparateLine(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n恵興業 請負\n第二倉庫\n田中"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 1)
	assert.Equal(t, "恵興業", rows[0].Client)
	assert.Equal(t, "請負", rows[0].WorkType)
	assert.Equal(t, "第二倉庫", rows[0].Site)
	assert.Equal(t, 1.0, rows[0].Quantity)
	assert.Equal(t, 0.0, rows[0].OvertimeHours)
}

func TestParse_BlockOvertimeAppliesRetroactively(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n恵興業 常用 / 追浜造船所\n田中\n鈴木\n残業1\n佐藤"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, 1.0, r.OvertimeHours, "worker %s", r.WorkerName)
	}
}

func TestParse_BlockQuantityAppliesRetroactively(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n恵興業 常用 / 追浜造船所\n田中\n鈴木\n半日"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 2)
	assert.Equal(t, 0.5, rows[0].Quantity)
	assert.Equal(t, 0.5, rows[1].Quantity)
}

func TestParse_NewDateResetsBlockDefaults(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n恵興業 常用 / 追浜造船所\n田中\n残業2\n1/17\n恵興業 常用 / 追浜造船所\n鈴木"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 2)
	assert.Equal(t, 2.0, rows[0].OvertimeHours)
	assert.Equal(t, 0.0, rows[1].OvertimeHours, "defaults must not leak into the next date block")
	assert.Equal(t, time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC), rows[1].Date)
}

func TestParse_StatusBeforeName(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n恵興業 常用 / 追浜造船所\n半日 田中\n残業2 鈴木"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 2)
	assert.Equal(t, 0.5, rows[0].Quantity)
	assert.Equal(t, 2.0, rows[1].OvertimeHours)
	assert.Equal(t, 1.0, rows[1].Quantity)
}

func TestParse_BareNumberIsQuantity(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n恵興業 常用 / 追浜造船所\n田中 0.5\n鈴木 2"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 2)
	assert.Equal(t, 0.5, rows[0].Quantity)
	assert.Equal(t, 2.0, rows[1].Quantity)
}

func TestParse_OvertimeShorthandVariants(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		token string
		want  float64
	}{
		{"残業1", 1},
		{"残業1.5h", 1.5},
		{"残業2時間", 2},
		{"残2", 2},
		{"+1h", 1},
		{"ot1", 1},
		{"OT1.5h", 1.5},
		{"overtime2h", 2},
	}

	for _, tc := range cases {
		text := "1/16\n恵興業 常用 / 追浜造船所\n田中 " + tc.token
		rows := p.Parse(text, receivedAt)
		require.Len(t, rows, 1, "token %s", tc.token)
		assert.Equal(t, tc.want, rows[0].OvertimeHours, "token %s", tc.token)
	}
}

func TestParse_FullWidthInput(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "１／１６\n恵興業　常用　／　追浜造船所\n田中　残業１"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 1)
	assert.Equal(t, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "追浜造船所", rows[0].Site)
	assert.Equal(t, 1.0, rows[0].OvertimeHours)
}

func TestParse_NoiseLinesIgnored(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	text := "1/16\n恵興業 常用 / 追浜造船所\n田中\n👍\n---"

	rows := p.Parse(text, receivedAt)
	require.Len(t, rows, 1)
	assert.Equal(t, "田中", rows[0].WorkerName)
}

func TestParse_NothingBeforeFirstDate(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	rows := p.Parse("恵興業 常用 / 追浜造船所\n田中", receivedAt)
	assert.Empty(t, rows)
}

func TestParseDateLine_FullDateUsedAsGiven(t *testing.T) {
	t.Parallel()
	p := testParser()
	receivedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	d, ok := p.parseDateLine("2024/03/05", receivedAt)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDateLine_YearCorrection(t *testing.T) {
	t.Parallel()
	p := testParser()

	cases := []struct {
		name       string
		receivedAt time.Time
		line       string
		want       time.Time
	}{
		{
			name:       "within window keeps receipt year",
			receivedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
			line:       "1/16(火)",
			want:       time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "too far in the future rolls back a year",
			receivedAt: time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
			line:       "12/28",
			want:       time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "far in the past rolls forward a year",
			receivedAt: time.Date(2025, 12, 30, 12, 0, 0, 0, time.UTC),
			line:       "1月3日",
			want:       time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := p.parseDateLine(tc.line, tc.receivedAt)
			require.True(t, ok)
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestParseClientSite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line     string
		client   string
		workType string
		site     string
	}{
		{"恵興業 常用 / 追浜造船所", "恵興業", "常用", "追浜造船所"},
		{"恵興業 請負｜第二倉庫", "恵興業", "請負", "第二倉庫"},
		{"恵興業 常用", "恵興業", "常用", ""},
		{"恵興業", "恵興業", "", ""},
	}

	for _, tc := range cases {
		client, workType, site := parseClientSite(tc.line)
		assert.Equal(t, tc.client, client, tc.line)
		assert.Equal(t, tc.workType, workType, tc.line)
		assert.Equal(t, tc.site, site, tc.line)
	}
}
