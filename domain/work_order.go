package domain

import (
	"math"
	"time"
)

type Employee struct {
	ID   string `json:"id" yaml:"id" binding:"required"`
	Name string `json:"name" yaml:"name"`
	// Exists is false once the referenced person is no longer a valid assignment.
	Exists bool `json:"exists" yaml:"exists"`
}

type WorkOrder struct {
	ID         string `json:"id" yaml:"id" binding:"required" validate:"required"`
	StartDate  Date   `json:"startDate" yaml:"startDate"`
	EndDate    Date   `json:"endDate" yaml:"endDate"`
	Site       string `json:"site" yaml:"site" validate:"required"`
	WorkCenter string `json:"workCenter" yaml:"workCenter" validate:"required"`
	Operation  string `json:"operation" yaml:"operation"`
	Status     Status `json:"status" yaml:"status" validate:"required,workorderstatus"`
	Target     uint64 `json:"target" yaml:"target"`
	Produced   uint64 `json:"produced" yaml:"produced"`
	// Progress is derived from Produced and Target, see ComputeProgress.
	Progress  int        `json:"progress" yaml:"-"`
	Team      string     `json:"team" yaml:"team"`
	Employees []Employee `json:"employees" yaml:"employees"`
}

// WorkOrderPatch carries the fields of a shallow merge, nil fields are left untouched.
// Progress is not patchable, it follows Produced.
type WorkOrderPatch struct {
	StartDate  *Date       `json:"startDate"`
	EndDate    *Date       `json:"endDate"`
	Site       *string     `json:"site"`
	WorkCenter *string     `json:"workCenter"`
	Operation  *string     `json:"operation"`
	Status     *Status     `json:"status"`
	Target     *uint64     `json:"target"`
	Produced   *uint64     `json:"produced"`
	Team       *string     `json:"team"`
	Employees  *[]Employee `json:"employees"`
}

type WorkOrderQuery struct {
	Status  Status `form:"status" json:"status"`
	Keyword string `form:"keyword" json:"keyword"`
}

type ProgressRecording struct {
	Produced *uint64 `json:"produced" binding:"required"`
}

type StatusSetting struct {
	Status Status `json:"status" binding:"required"`
}

// ComputeProgress returns round(produced / target * 100). A zero target has no meaningful percentage,
// neither has a target so small that the percentage does not fit an int.
func ComputeProgress(produced, target uint64) (int, error) {
	if target == 0 {
		return 0, ErrInvalidTarget
	}
	p := math.Round(float64(produced) / float64(target) * 100)
	if p >= float64(math.MaxInt) {
		return 0, ErrInvalidTarget
	}
	return int(p), nil
}

// Clone returns a copy which shares no employee slice with w.
func (w WorkOrder) Clone() WorkOrder {
	c := w
	if w.Employees != nil {
		c.Employees = append([]Employee{}, w.Employees...)
	}
	return c
}

// IsOverdue reports whether the order is not completed and its end date is before the day of now.
func (w *WorkOrder) IsOverdue(now time.Time) bool {
	if w.Status.IsDone() || w.EndDate.IsZero() {
		return false
	}
	return w.EndDate.Before(DateFromTime(now))
}

// Apply merges the non-nil fields of patch into w.
func (p *WorkOrderPatch) Apply(w *WorkOrder) {
	if p.StartDate != nil {
		w.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		w.EndDate = *p.EndDate
	}
	if p.Site != nil {
		w.Site = *p.Site
	}
	if p.WorkCenter != nil {
		w.WorkCenter = *p.WorkCenter
	}
	if p.Operation != nil {
		w.Operation = *p.Operation
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.Target != nil {
		w.Target = *p.Target
	}
	if p.Produced != nil {
		w.Produced = *p.Produced
	}
	if p.Team != nil {
		w.Team = *p.Team
	}
	if p.Employees != nil {
		w.Employees = append([]Employee{}, (*p.Employees)...)
	}
}
