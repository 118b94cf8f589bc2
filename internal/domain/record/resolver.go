package record

// Resolve computes the final value of each overridable field: the manual
// override when one is present, the parsed original otherwise. It is a pure
// function over the record; finals are recomputed on demand and never stored
// back, since both originals and overrides can change independently while
// the record stays pending.
//
// For the string fields an override set to the empty string counts as
// absent, matching how reviewers clear a correction.
func Resolve(r PendingRecord) FinalValues {
	f := FinalValues{
		Client:        r.Client,
		WorkType:      r.WorkType,
		Site:          r.Site,
		WorkerName:    r.WorkerName,
		Quantity:      r.Quantity,
		OvertimeHours: r.OvertimeHours,
	}

	o := r.Overrides
	if o.Client != nil && *o.Client != "" {
		f.Client = *o.Client
	}
	if o.WorkType != nil && *o.WorkType != "" {
		f.WorkType = *o.WorkType
	}
	if o.Site != nil && *o.Site != "" {
		f.Site = *o.Site
	}
	if o.WorkerName != nil && *o.WorkerName != "" {
		f.WorkerName = *o.WorkerName
	}
	if o.Quantity != nil {
		f.Quantity = *o.Quantity
	}
	if o.OvertimeHours != nil {
		f.OvertimeHours = *o.OvertimeHours
	}

	return f
}
