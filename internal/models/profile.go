package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobSeekerProfile is owned 1:1 by a JOB_SEEKER user. It is created empty at
// registration and filled in lazily through upserts.
type JobSeekerProfile struct {
	UserID   string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Title    string `gorm:"column:title;type:text" json:"title"`
	Bio      string `gorm:"column:bio;type:text" json:"bio"`
	Location string `gorm:"column:location;type:text" json:"location"`

	Skills datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills"`

	Experience string `gorm:"column:experience;type:text" json:"experience"`
	Education  string `gorm:"column:education;type:text" json:"education"`

	Resume   string `gorm:"column:resume;type:text" json:"resume"`
	LinkedIn string `gorm:"column:linkedin;type:text" json:"linkedin"`
	GitHub   string `gorm:"column:github;type:text" json:"github"`
	Website  string `gorm:"column:website;type:text" json:"website"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (JobSeekerProfile) TableName() string { return "job_seeker_profiles" }

// JobProviderProfile is owned 1:1 by a JOB_PROVIDER user.
type JobProviderProfile struct {
	UserID             string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	CompanyName        string `gorm:"column:company_name;type:text" json:"company_name"`
	CompanyDescription string `gorm:"column:company_description;type:text" json:"company_description"`
	Industry           string `gorm:"column:industry;type:text" json:"industry"`
	Location           string `gorm:"column:location;type:text" json:"location"`
	Website            string `gorm:"column:website;type:text" json:"website"`
	LinkedIn           string `gorm:"column:linkedin;type:text" json:"linkedin"`
	FoundedYear        int    `gorm:"column:founded_year" json:"founded_year"`
	CompanySize        string `gorm:"column:company_size;type:text" json:"company_size"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (JobProviderProfile) TableName() string { return "job_provider_profiles" }
