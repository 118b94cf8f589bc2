package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/genbaflow/genba-backend-go/internal/pkg/validator"
)

type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	result, err := ctx.Review.Sync(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Sync complete: %d added, %d updated, %d skipped (already decided)\n",
		result.Added, result.Updated, result.SkippedTerminal)
	return nil
}

type ApproveCmd struct {
	Actor string `help:"Who is approving." required:""`
}

func (c *ApproveCmd) Run(ctx *Context) error {
	moved, err := ctx.Review.ApproveAllOpen(context.Background(), c.Actor, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Approved %d records\n", moved)
	return nil
}

type RejectCmd struct {
	Actor  string `help:"Who is rejecting." required:""`
	Reason string `help:"Rejection reason. Prompted for when omitted."`
}

func (c *RejectCmd) Run(ctx *Context) error {
	reason := c.Reason
	if validator.IsEmpty(reason) {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Rejection reason").
					Description("Recorded on every rejected record.").
					Value(&reason),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	moved, err := ctx.Review.RejectAllOpen(context.Background(), c.Actor, reason, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Rejected %d records\n", moved)
	return nil
}

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Clear pending, approved and rejected records?").
					Description("Work records and the message log are kept.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := ctx.Review.ResetAll(context.Background()); err != nil {
		return err
	}

	fmt.Println("Review collections cleared.")
	return nil
}

type PendingCmd struct{}

func (c *PendingCmd) Run(ctx *Context) error {
	views, err := ctx.Review.ListPending(context.Background())
	if err != nil {
		return err
	}

	if len(views) == 0 {
		fmt.Println("No pending records.")
		return nil
	}

	for _, v := range views {
		f := v.Final
		fmt.Printf("%-24s %s  %s %s %s  %s  qty=%.2g ot=%.2g  [%s]\n",
			v.Key, v.Date.Format("2006-01-02"),
			f.Client, f.WorkType, f.Site, f.WorkerName,
			f.Quantity, f.OvertimeHours, v.Status)
	}
	return nil
}
