package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pendingFixture() PendingRecord {
	return PendingRecord{
		WorkRecord: WorkRecord{
			Key:           "msg-1_0",
			Client:        "恵興業",
			WorkType:      WorkTypeRegular,
			Site:          "追浜造船所",
			WorkerName:    "田中",
			Quantity:      1,
			OvertimeHours: 0,
		},
		Status: StatusOpen,
	}
}

func TestResolveWithoutOverrides(t *testing.T) {
	f := Resolve(pendingFixture())

	assert.Equal(t, "恵興業", f.Client)
	assert.Equal(t, WorkTypeRegular, f.WorkType)
	assert.Equal(t, "追浜造船所", f.Site)
	assert.Equal(t, "田中", f.WorkerName)
	assert.Equal(t, 1.0, f.Quantity)
	assert.Equal(t, 0.0, f.OvertimeHours)
}

func TestResolveOverrideWins(t *testing.T) {
	r := pendingFixture()
	site := "本牧埠頭"
	qty := 0.5
	r.Overrides = Overrides{Site: &site, Quantity: &qty}

	f := Resolve(r)

	assert.Equal(t, "本牧埠頭", f.Site)
	assert.Equal(t, 0.5, f.Quantity)
	assert.Equal(t, "恵興業", f.Client, "untouched fields keep their originals")
}

func TestResolveEmptyStringOverrideCountsAsAbsent(t *testing.T) {
	r := pendingFixture()
	empty := ""
	r.Overrides = Overrides{Site: &empty}

	f := Resolve(r)

	assert.Equal(t, "追浜造船所", f.Site, "cleared string override falls back to the original")
}

func TestResolveZeroNumericOverrideCounts(t *testing.T) {
	r := pendingFixture()
	zero := 0.0
	r.Overrides = Overrides{Quantity: &zero}

	f := Resolve(r)

	assert.Equal(t, 0.0, f.Quantity, "an explicit numeric zero is a real correction")
}
