// Package store persists report-run history in sqlite.
package store

import (
	"time"

	"gorm.io/datatypes"
)

// RunStatus is the lifecycle state of one analysis run.
type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// ReportRun is one analysis execution with its headline figures and
// the alert payload as JSON.
type ReportRun struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	Dataset          string         `gorm:"size:255;index" json:"dataset"`
	Status           RunStatus      `gorm:"size:16" json:"status"`
	Rows             int            `json:"rows"`
	Columns          int            `json:"columns"`
	NumericColumns   int            `json:"numeric_columns"`
	CategoricalCols  int            `json:"categorical_columns"`
	DuplicateRecords int            `json:"duplicate_records"`
	OutputPath       string         `gorm:"size:512" json:"output_path"`
	Alerts           datatypes.JSON `json:"alerts"`
	Message          string         `gorm:"size:1024" json:"message,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName keeps the table name stable across gorm naming changes.
func (ReportRun) TableName() string { return "report_runs" }
