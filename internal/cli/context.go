package cli

import (
	"github.com/genbaflow/genba-backend-go/internal/domain/payroll"
	"github.com/genbaflow/genba-backend-go/internal/domain/record"
)

// Context carries the wired services into every command's Run.
type Context struct {
	Review  record.ReviewService
	Export  payroll.ExportService
	Payroll payroll.Repository
}
