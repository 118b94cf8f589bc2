package review

import (
	"context"
	"fmt"
	"time"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/pkg/validator"
)

type ReviewServiceImpl struct {
	workRepo     record.WorkRepository
	pendingRepo  record.PendingRepository
	approvedRepo record.ApprovedRepository
	rejectedRepo record.RejectedRepository
}

func NewReviewService(
	workRepo record.WorkRepository,
	pendingRepo record.PendingRepository,
	approvedRepo record.ApprovedRepository,
	rejectedRepo record.RejectedRepository,
) record.ReviewService {
	return &ReviewServiceImpl{
		workRepo:     workRepo,
		pendingRepo:  pendingRepo,
		approvedRepo: approvedRepo,
		rejectedRepo: rejectedRepo,
	}
}

// Sync implements record.ReviewService.
func (s *ReviewServiceImpl) Sync(ctx context.Context) (record.SyncResult, error) {
	candidates, err := s.workRepo.ReadAll(ctx)
	if err != nil {
		return record.SyncResult{}, fmt.Errorf("read work records: %w", err)
	}

	approvedKeys, err := s.approvedRepo.Keys(ctx)
	if err != nil {
		return record.SyncResult{}, fmt.Errorf("read approved keys: %w", err)
	}
	rejectedKeys, err := s.rejectedRepo.Keys(ctx)
	if err != nil {
		return record.SyncResult{}, fmt.Errorf("read rejected keys: %w", err)
	}

	pending, err := s.pendingRepo.ReadAll(ctx)
	if err != nil {
		return record.SyncResult{}, fmt.Errorf("read pending records: %w", err)
	}
	pendingByKey := make(map[string]record.PendingRecord, len(pending))
	for _, p := range pending {
		pendingByKey[p.Key] = p
	}

	var result record.SyncResult
	var inserts []record.PendingRecord

	for _, c := range candidates {
		if c.Key == "" {
			continue
		}

		// Terminal state is final; re-ingestion never revisits it.
		if _, ok := approvedKeys[c.Key]; ok {
			result.SkippedTerminal++
			continue
		}
		if _, ok := rejectedKeys[c.Key]; ok {
			result.SkippedTerminal++
			continue
		}

		if existing, ok := pendingByKey[c.Key]; ok {
			if existing.Status == record.StatusOpen {
				// Refresh only the parsed originals; reviewer overrides
				// must survive resync.
				if err := s.pendingRepo.OverwriteOriginals(ctx, c.Key, c); err != nil {
					return result, fmt.Errorf("refresh pending record %s: %w", c.Key, err)
				}
				result.Updated++
			}
			continue
		}

		inserts = append(inserts, record.PendingRecord{
			WorkRecord: c,
			Status:     record.StatusOpen,
		})
	}

	if len(inserts) > 0 {
		if err := s.pendingRepo.Append(ctx, inserts); err != nil {
			return result, fmt.Errorf("insert pending records: %w", err)
		}
		result.Added = len(inserts)
	}

	return result, nil
}

// ApproveAllOpen implements record.ReviewService.
func (s *ReviewServiceImpl) ApproveAllOpen(ctx context.Context, actor string, now time.Time) (int, error) {
	if validator.IsEmpty(actor) {
		return 0, record.ErrActorRequired
	}

	open, err := s.readOpen(ctx)
	if err != nil {
		return 0, err
	}
	if len(open) == 0 {
		return 0, nil
	}

	moved := make([]record.ApprovedRecord, 0, len(open))
	keys := make([]string, 0, len(open))
	for _, p := range open {
		moved = append(moved, buildTerminal(p, record.StatusApproved, actor, now))
		keys = append(keys, p.Key)
	}

	if err := s.approvedRepo.Append(ctx, moved); err != nil {
		return 0, fmt.Errorf("append approved records: %w", err)
	}
	if err := s.pendingRepo.DeleteKeys(ctx, keys); err != nil {
		return 0, fmt.Errorf("remove approved keys from pending: %w", err)
	}

	return len(moved), nil
}

// RejectAllOpen implements record.ReviewService.
func (s *ReviewServiceImpl) RejectAllOpen(ctx context.Context, actor, reason string, now time.Time) (int, error) {
	if validator.IsEmpty(actor) {
		return 0, record.ErrActorRequired
	}
	// Validated before any row is touched: an empty reason moves nothing.
	if validator.IsEmpty(reason) {
		return 0, record.ErrReasonRequired
	}

	open, err := s.readOpen(ctx)
	if err != nil {
		return 0, err
	}
	if len(open) == 0 {
		return 0, nil
	}

	moved := make([]record.RejectedRecord, 0, len(open))
	keys := make([]string, 0, len(open))
	for _, p := range open {
		moved = append(moved, record.RejectedRecord{
			ApprovedRecord: buildTerminal(p, record.StatusRejected, actor, now),
			Reason:         reason,
		})
		keys = append(keys, p.Key)
	}

	if err := s.rejectedRepo.Append(ctx, moved); err != nil {
		return 0, fmt.Errorf("append rejected records: %w", err)
	}
	if err := s.pendingRepo.DeleteKeys(ctx, keys); err != nil {
		return 0, fmt.Errorf("remove rejected keys from pending: %w", err)
	}

	return len(moved), nil
}

// SetOverrides implements record.ReviewService.
func (s *ReviewServiceImpl) SetOverrides(ctx context.Context, key string, overrides record.Overrides) error {
	if err := validateOverrides(overrides); err != nil {
		return err
	}
	return s.pendingRepo.SetOverrides(ctx, key, overrides)
}

// ResetAll implements record.ReviewService.
func (s *ReviewServiceImpl) ResetAll(ctx context.Context) error {
	if err := s.pendingRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear pending: %w", err)
	}
	if err := s.approvedRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear approved: %w", err)
	}
	if err := s.rejectedRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear rejected: %w", err)
	}
	return nil
}

// ListPending implements record.ReviewService.
func (s *ReviewServiceImpl) ListPending(ctx context.Context) ([]record.PendingView, error) {
	pending, err := s.pendingRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read pending records: %w", err)
	}

	views := make([]record.PendingView, 0, len(pending))
	for _, p := range pending {
		views = append(views, record.PendingView{
			PendingRecord: p,
			Final:         record.Resolve(p),
		})
	}
	return views, nil
}

// ListApproved implements record.ReviewService.
func (s *ReviewServiceImpl) ListApproved(ctx context.Context) ([]record.ApprovedRecord, error) {
	return s.approvedRepo.ReadAll(ctx)
}

// ListRejected implements record.ReviewService.
func (s *ReviewServiceImpl) ListRejected(ctx context.Context) ([]record.RejectedRecord, error) {
	return s.rejectedRepo.ReadAll(ctx)
}

func (s *ReviewServiceImpl) readOpen(ctx context.Context) ([]record.PendingRecord, error) {
	pending, err := s.pendingRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read pending records: %w", err)
	}

	var open []record.PendingRecord
	for _, p := range pending {
		if p.Status == record.StatusOpen {
			open = append(open, p)
		}
	}
	return open, nil
}

// buildTerminal freezes one pending record into its terminal shape,
// carrying resolved finals for the six mutable fields.
func buildTerminal(p record.PendingRecord, status, actor string, now time.Time) record.ApprovedRecord {
	final := record.Resolve(p)
	return record.ApprovedRecord{
		Key:             p.Key,
		Date:            p.Date,
		YearMonth:       p.YearMonth,
		Client:          final.Client,
		WorkType:        final.WorkType,
		Site:            final.Site,
		WorkerName:      final.WorkerName,
		Quantity:        final.Quantity,
		OvertimeHours:   final.OvertimeHours,
		SourceMessageID: p.SourceMessageID,
		RegisteredAt:    p.RegisteredAt,
		Status:          status,
		Actor:           actor,
		ActedAt:         now,
	}
}

func validateOverrides(o record.Overrides) error {
	var errs validator.ValidationErrors

	validWorkTypes := []string{record.WorkTypeRegular, record.WorkTypeContract, ""}
	if o.WorkType != nil && !validator.IsInSlice(*o.WorkType, validWorkTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: fmt.Sprintf("work_type must be %s, %s or empty", record.WorkTypeRegular, record.WorkTypeContract),
		})
	}
	if o.Quantity != nil && *o.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}
	if o.OvertimeHours != nil && *o.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
