package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusClosed JobStatus = "CLOSED"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusActive || s == JobStatusClosed
}

// Job is posted by a JOB_PROVIDER user (UserID). Status is the only
// deactivation mechanism; there is no delete path.
type Job struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;index" json:"user_id"`

	Title    string  `gorm:"column:title;type:text" json:"title"`
	Company  string  `gorm:"column:company;type:text" json:"company"`
	Location string  `gorm:"column:location;type:text" json:"location"`
	Type     JobType `gorm:"column:type;type:text" json:"type"`
	Salary   string  `gorm:"column:salary;type:text" json:"salary"`

	Description      string                      `gorm:"column:description;type:text" json:"description"`
	Requirements     datatypes.JSONSlice[string] `gorm:"column:requirements" json:"requirements"`
	Responsibilities datatypes.JSONSlice[string] `gorm:"column:responsibilities" json:"responsibilities"`

	Experience string                      `gorm:"column:experience;type:text" json:"experience"`
	Education  string                      `gorm:"column:education;type:text" json:"education"`
	Industry   string                      `gorm:"column:industry;type:text" json:"industry"`
	Skills     datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills"`

	Status   JobStatus `gorm:"column:status;type:text" json:"status"`
	Featured bool      `gorm:"column:featured" json:"featured"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }
