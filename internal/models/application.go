package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// Valid reports whether s is one of the known statuses. Unknown strings are
// rejected at the service boundary and never persisted.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusInterview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links one job and one seeker. The (job_id, user_id) pair is
// unique so a duplicate submission cannot create a second row even under
// concurrent requests.
type Application struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID  string `gorm:"column:job_id;type:uuid;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID string `gorm:"column:user_id;type:uuid;uniqueIndex:idx_applications_job_user" json:"user_id"`

	CoverLetter string            `gorm:"column:cover_letter;type:text" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"column:status;type:text" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`

	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Application) TableName() string { return "applications" }
