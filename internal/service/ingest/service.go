package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/genbaflow/genba-backend-go/internal/domain/message"
	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/parser"
)

type IngestServiceImpl struct {
	parser      *parser.Parser
	workRepo    record.WorkRepository
	pendingRepo record.PendingRepository
	logRepo     message.LogRepository
	dedupWindow int
	loc         *time.Location
}

func NewIngestService(
	p *parser.Parser,
	workRepo record.WorkRepository,
	pendingRepo record.PendingRepository,
	logRepo message.LogRepository,
	dedupWindow int,
	loc *time.Location,
) message.IngestService {
	if loc == nil {
		loc = time.UTC
	}
	return &IngestServiceImpl{
		parser:      p,
		workRepo:    workRepo,
		pendingRepo: pendingRepo,
		logRepo:     logRepo,
		dedupWindow: dedupWindow,
		loc:         loc,
	}
}

// ProcessEvent implements message.IngestService.
func (s *IngestServiceImpl) ProcessEvent(ctx context.Context, ev message.Event) (message.ProcessResult, error) {
	switch ev.Type {
	case message.EventTypeUnsend:
		return s.processUnsend(ctx, ev)
	case message.EventTypeMessage:
		return s.processMessage(ctx, ev)
	default:
		// Join/leave/sticker events and the like are acknowledged, nothing more.
		return message.ProcessResult{}, nil
	}
}

func (s *IngestServiceImpl) processMessage(ctx context.Context, ev message.Event) (message.ProcessResult, error) {
	if ev.MessageID == "" || ev.Text == "" {
		return message.ProcessResult{}, nil
	}

	duplicate, err := s.isDuplicate(ctx, ev.MessageID)
	if err != nil {
		return message.ProcessResult{}, fmt.Errorf("dedup check for message %s: %w", ev.MessageID, err)
	}
	if duplicate {
		s.appendLog(ctx, ev, ev.MessageID, message.LogStatusDuplicate, "already processed, skipped")
		return message.ProcessResult{Status: message.LogStatusDuplicate}, nil
	}

	rows := s.parser.Parse(ev.Text, ev.Timestamp)

	registeredAt := time.Now().In(s.loc)
	records := make([]record.WorkRecord, 0, len(rows))
	for i, row := range rows {
		records = append(records, record.WorkRecord{
			// messageID + positional index: stable across reprocessing.
			Key:             fmt.Sprintf("%s_%d", ev.MessageID, i),
			Date:            row.Date,
			YearMonth:       row.Date.Format("2006-01"),
			Client:          row.Client,
			WorkType:        row.WorkType,
			Site:            row.Site,
			WorkerName:      row.WorkerName,
			Quantity:        row.Quantity,
			OvertimeHours:   row.OvertimeHours,
			SourceMessageID: ev.MessageID,
			RegisteredAt:    registeredAt,
		})
	}

	if len(records) > 0 {
		if err := s.workRepo.Append(ctx, records); err != nil {
			s.appendLog(ctx, ev, ev.MessageID, message.LogStatusError, err.Error())
			return message.ProcessResult{Status: message.LogStatusError},
				fmt.Errorf("append work records for message %s: %w", ev.MessageID, err)
		}
	}

	s.appendLog(ctx, ev, ev.MessageID, message.LogStatusSuccess, fmt.Sprintf("registered %d rows", len(records)))
	return message.ProcessResult{Status: message.LogStatusSuccess, Rows: len(records)}, nil
}

func (s *IngestServiceImpl) processUnsend(ctx context.Context, ev message.Event) (message.ProcessResult, error) {
	if ev.UnsendMessageID == "" {
		return message.ProcessResult{}, nil
	}

	removed, err := s.workRepo.DeleteByMessageID(ctx, ev.UnsendMessageID)
	if err != nil {
		return message.ProcessResult{}, fmt.Errorf("withdraw message %s: %w", ev.UnsendMessageID, err)
	}

	// Rows already synced into review go too; terminal collections stay
	// immutable.
	pendingRemoved, err := s.pendingRepo.DeleteByMessageID(ctx, ev.UnsendMessageID)
	if err != nil {
		return message.ProcessResult{}, fmt.Errorf("withdraw pending rows for message %s: %w", ev.UnsendMessageID, err)
	}

	s.appendLog(ctx, ev, ev.UnsendMessageID, message.LogStatusDeleted,
		fmt.Sprintf("removed %d work rows, %d pending rows", removed, pendingRemoved))
	return message.ProcessResult{Status: message.LogStatusDeleted, Removed: removed}, nil
}

func (s *IngestServiceImpl) isDuplicate(ctx context.Context, messageID string) (bool, error) {
	ids, err := s.logRepo.RecentMessageIDs(ctx, s.dedupWindow)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == messageID {
			return true, nil
		}
	}
	return false, nil
}

// appendLog writes the processing outcome. Log failures must not fail the
// event, so they are only logged.
func (s *IngestServiceImpl) appendLog(ctx context.Context, ev message.Event, messageID, status, detail string) {
	body := ev.Text
	if ev.Type == message.EventTypeUnsend {
		body = "[UNSEND]"
	}

	entry := message.LogEntry{
		MessageID:  messageID,
		ReceivedAt: ev.Timestamp.In(s.loc),
		GroupID:    ev.GroupID,
		UserID:     ev.UserID,
		Body:       body,
		Status:     status,
		Detail:     detail,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		slog.Error("failed to append message log", "message_id", messageID, "error", err)
	}
}
