package ingest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaflow/genba-backend-go/internal/domain/message"
	"github.com/genbaflow/genba-backend-go/internal/parser"
	"github.com/genbaflow/genba-backend-go/internal/repository/memory"
)

const sampleText = "1/16(火)\n恵興業 常用\n追浜造船所\n田中 半日\n鈴木 残業1"

type deps struct {
	work    *memory.WorkRecordRepository
	pending *memory.PendingReviewRepository
	log     *memory.MessageLogRepository
	svc     message.IngestService
}

func newDeps(dedupWindow int) *deps {
	d := &deps{
		work:    memory.NewWorkRecordRepository(),
		pending: memory.NewPendingReviewRepository(),
		log:     memory.NewMessageLogRepository(),
	}
	d.svc = NewIngestService(parser.New(30, time.UTC), d.work, d.pending, d.log, dedupWindow, time.UTC)
	return d
}

func msgEvent(id, text string) message.Event {
	return message.Event{
		Type:      message.EventTypeMessage,
		MessageID: id,
		Text:      text,
		Timestamp: time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC),
		GroupID:   "group-1",
		UserID:    "user-1",
	}
}

func TestProcessMessageRegistersRowsWithCompositeKeys(t *testing.T) {
	ctx := context.Background()
	d := newDeps(2000)

	res, err := d.svc.ProcessEvent(ctx, msgEvent("msg-1", sampleText))
	require.NoError(t, err)
	assert.Equal(t, message.LogStatusSuccess, res.Status)
	assert.Equal(t, 2, res.Rows)

	rows, err := d.work.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "msg-1_0", rows[0].Key)
	assert.Equal(t, "msg-1_1", rows[1].Key)
	assert.Equal(t, "msg-1", rows[0].SourceMessageID)
	assert.Equal(t, "2026-01", rows[0].YearMonth)
	assert.Equal(t, "田中", rows[0].WorkerName)
	assert.Equal(t, 0.5, rows[0].Quantity)
	assert.Equal(t, "鈴木", rows[1].WorkerName)
	assert.Equal(t, 1.0, rows[1].OvertimeHours)

	entries := d.log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, message.LogStatusSuccess, entries[0].Status)
	assert.Equal(t, sampleText, entries[0].Body)
}

func TestProcessMessageDuplicateSkipped(t *testing.T) {
	ctx := context.Background()
	d := newDeps(2000)

	_, err := d.svc.ProcessEvent(ctx, msgEvent("msg-1", sampleText))
	require.NoError(t, err)

	res, err := d.svc.ProcessEvent(ctx, msgEvent("msg-1", sampleText))
	require.NoError(t, err)
	assert.Equal(t, message.LogStatusDuplicate, res.Status)
	assert.Equal(t, 0, res.Rows)

	rows, err := d.work.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "no rows added on redelivery")

	entries := d.log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, message.LogStatusDuplicate, entries[1].Status)
}

func TestDedupWindowIsBounded(t *testing.T) {
	ctx := context.Background()
	d := newDeps(3)

	// Push msg-1 out of the 3-entry dedup window.
	_, err := d.svc.ProcessEvent(ctx, msgEvent("msg-1", sampleText))
	require.NoError(t, err)
	for i := 2; i <= 4; i++ {
		_, err := d.svc.ProcessEvent(ctx, msgEvent(fmt.Sprintf("msg-%d", i), sampleText))
		require.NoError(t, err)
	}

	res, err := d.svc.ProcessEvent(ctx, msgEvent("msg-1", sampleText))
	require.NoError(t, err)
	assert.Equal(t, message.LogStatusSuccess, res.Status,
		"an id outside the window is processed again")
}

func TestProcessMessageNoParseableRowsStillLogged(t *testing.T) {
	ctx := context.Background()
	d := newDeps(2000)

	res, err := d.svc.ProcessEvent(ctx, msgEvent("msg-1", "👍\nおつかれさまです"))
	require.NoError(t, err)
	assert.Equal(t, message.LogStatusSuccess, res.Status)
	assert.Equal(t, 0, res.Rows)

	rows, err := d.work.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	entries := d.log.Entries()
	require.Len(t, entries, 1, "chatter is logged so redelivery dedups it")
}

func TestProcessMessageIgnoresEmptyIDOrText(t *testing.T) {
	ctx := context.Background()
	d := newDeps(2000)

	res, err := d.svc.ProcessEvent(ctx, msgEvent("", sampleText))
	require.NoError(t, err)
	assert.Equal(t, message.ProcessResult{}, res)

	res, err = d.svc.ProcessEvent(ctx, msgEvent("msg-1", ""))
	require.NoError(t, err)
	assert.Equal(t, message.ProcessResult{}, res)

	assert.Empty(t, d.log.Entries())
}

func TestProcessUnsendRemovesWorkAndPendingRows(t *testing.T) {
	ctx := context.Background()
	d := newDeps(2000)

	_, err := d.svc.ProcessEvent(ctx, msgEvent("msg-1", sampleText))
	require.NoError(t, err)
	_, err = d.svc.ProcessEvent(ctx, msgEvent("msg-2", sampleText))
	require.NoError(t, err)

	res, err := d.svc.ProcessEvent(ctx, message.Event{
		Type:            message.EventTypeUnsend,
		UnsendMessageID: "msg-1",
		Timestamp:       time.Date(2026, 1, 16, 9, 5, 0, 0, time.UTC),
		GroupID:         "group-1",
	})
	require.NoError(t, err)
	assert.Equal(t, message.LogStatusDeleted, res.Status)
	assert.Equal(t, 2, res.Removed)

	rows, err := d.work.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "msg-2", r.SourceMessageID)
	}

	entries := d.log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "[UNSEND]", entries[2].Body)
}

func TestProcessEventIgnoresUnknownTypes(t *testing.T) {
	ctx := context.Background()
	d := newDeps(2000)

	res, err := d.svc.ProcessEvent(ctx, message.Event{Type: "join", GroupID: "group-1"})
	require.NoError(t, err)
	assert.Equal(t, message.ProcessResult{}, res)
	assert.Empty(t, d.log.Entries())
}
