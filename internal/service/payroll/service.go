package payroll

import (
	"context"
	"fmt"
	"sort"

	"github.com/genbaflow/genba-backend-go/internal/domain/payroll"
	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/domain/worker"
)

type ExportServiceImpl struct {
	approvedRepo record.ApprovedRepository
	workerRepo   worker.Repository
	payrollRepo  payroll.Repository
}

func NewExportService(
	approvedRepo record.ApprovedRepository,
	workerRepo worker.Repository,
	payrollRepo payroll.Repository,
) payroll.ExportService {
	return &ExportServiceImpl{
		approvedRepo: approvedRepo,
		workerRepo:   workerRepo,
		payrollRepo:  payrollRepo,
	}
}

// ExportApproved implements payroll.ExportService.
func (s *ExportServiceImpl) ExportApproved(ctx context.Context) (payroll.ExportResult, error) {
	approved, err := s.approvedRepo.ReadAll(ctx)
	if err != nil {
		return payroll.ExportResult{}, fmt.Errorf("read approved records: %w", err)
	}

	workers, err := s.workerRepo.ReadAll(ctx)
	if err != nil {
		return payroll.ExportResult{}, fmt.Errorf("read worker master: %w", err)
	}
	rateByName := make(map[string]worker.Worker, len(workers))
	for _, w := range workers {
		rateByName[w.Name] = w
	}

	exported, err := s.payrollRepo.Keys(ctx)
	if err != nil {
		return payroll.ExportResult{}, fmt.Errorf("read exported keys: %w", err)
	}

	var result payroll.ExportResult
	var entries []payroll.Entry
	unknown := map[string]struct{}{}

	for _, a := range approved {
		if _, ok := exported[a.Key]; ok {
			result.SkippedExisting++
			continue
		}

		w, ok := rateByName[a.WorkerName]
		if !ok {
			unknown[a.WorkerName] = struct{}{}
			continue
		}

		entries = append(entries, payroll.Entry{
			Key:           a.Key,
			YearMonth:     a.YearMonth,
			Date:          a.Date,
			Site:          mergeSite(a.Client, a.Site),
			WorkType:      a.WorkType,
			WorkerName:    a.WorkerName,
			Quantity:      a.Quantity,
			OvertimeHours: a.OvertimeHours,
			DailyRate:     w.DailyRate,
			Amount:        payroll.CalculateAmount(w.DailyRate, a.Quantity, a.OvertimeHours),
			Status:        a.Status,
		})
	}

	if len(entries) > 0 {
		if err := s.payrollRepo.Append(ctx, entries); err != nil {
			return result, fmt.Errorf("append payroll entries: %w", err)
		}
		result.Exported = len(entries)
	}

	for name := range unknown {
		result.UnknownWorkers = append(result.UnknownWorkers, name)
	}
	sort.Strings(result.UnknownWorkers)

	return result, nil
}

// mergeSite joins client and site into the single location column the
// payroll sheet carries.
func mergeSite(client, site string) string {
	switch {
	case client == "":
		return site
	case site == "":
		return client
	default:
		return client + " / " + site
	}
}
