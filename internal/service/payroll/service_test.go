package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/domain/worker"
	"github.com/genbaflow/genba-backend-go/internal/repository/memory"
)

func approvedRow(key, name string, qty, ot float64) record.ApprovedRecord {
	return record.ApprovedRecord{
		Key:           key,
		Date:          time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		YearMonth:     "2026-01",
		Client:        "恵興業",
		WorkType:      record.WorkTypeRegular,
		Site:          "追浜造船所",
		WorkerName:    name,
		Quantity:      qty,
		OvertimeHours: ot,
		Status:        record.StatusApproved,
		Actor:         "yamada",
		ActedAt:       time.Date(2026, 1, 17, 10, 0, 0, 0, time.UTC),
	}
}

func TestExportApprovedComputesAmount(t *testing.T) {
	ctx := context.Background()

	approvedRepo := memory.NewApprovedRepository()
	workerRepo := memory.NewWorkerRepository(
		worker.Worker{Name: "田中", DailyRate: decimal.NewFromInt(18000)},
	)
	payrollRepo := memory.NewPayrollRepository()
	svc := NewExportService(approvedRepo, workerRepo, payrollRepo)

	require.NoError(t, approvedRepo.Append(ctx, []record.ApprovedRecord{
		approvedRow("msg-1_0", "田中", 0.5, 1),
	}))

	res, err := svc.ExportApproved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Exported)
	assert.Empty(t, res.UnknownWorkers)

	entries, err := payrollRepo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// 18000*0.5 + 18000/8*1.25*1 = 9000 + 2812.5, floored to 11812.
	assert.True(t, decimal.NewFromInt(11812).Equal(entries[0].Amount),
		"amount = %s", entries[0].Amount)
	assert.Equal(t, "恵興業 / 追浜造船所", entries[0].Site)
	assert.True(t, decimal.NewFromInt(18000).Equal(entries[0].DailyRate))
}

func TestExportSkipsAlreadyExportedKeys(t *testing.T) {
	ctx := context.Background()

	approvedRepo := memory.NewApprovedRepository()
	workerRepo := memory.NewWorkerRepository(
		worker.Worker{Name: "田中", DailyRate: decimal.NewFromInt(18000)},
	)
	payrollRepo := memory.NewPayrollRepository()
	svc := NewExportService(approvedRepo, workerRepo, payrollRepo)

	require.NoError(t, approvedRepo.Append(ctx, []record.ApprovedRecord{
		approvedRow("msg-1_0", "田中", 1, 0),
	}))

	first, err := svc.ExportApproved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Exported)

	second, err := svc.ExportApproved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Exported)
	assert.Equal(t, 1, second.SkippedExisting)

	entries, err := payrollRepo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportReportsUnknownWorkersAndProceeds(t *testing.T) {
	ctx := context.Background()

	approvedRepo := memory.NewApprovedRepository()
	workerRepo := memory.NewWorkerRepository(
		worker.Worker{Name: "田中", DailyRate: decimal.NewFromInt(18000)},
	)
	payrollRepo := memory.NewPayrollRepository()
	svc := NewExportService(approvedRepo, workerRepo, payrollRepo)

	require.NoError(t, approvedRepo.Append(ctx, []record.ApprovedRecord{
		approvedRow("msg-1_0", "田中", 1, 0),
		approvedRow("msg-1_1", "見知らぬ", 1, 0),
		approvedRow("msg-1_2", "見知らぬ", 0.5, 0),
	}))

	res, err := svc.ExportApproved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Exported)
	assert.Equal(t, []string{"見知らぬ"}, res.UnknownWorkers, "reported once per name")

	entries, err := payrollRepo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "田中", entries[0].WorkerName)
}
