package domain

import (
	"context"
	"time"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Company is the contact block embedded in every job posting.
type Company struct {
	Name         string `gorm:"size:255;not null" json:"name"`
	ContactEmail string `gorm:"size:255;not null" json:"contactEmail"`
	ContactPhone string `gorm:"size:64;not null" json:"contactPhone"`
}

type Job struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Type        string    `gorm:"size:32;not null" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	Company     Company   `gorm:"embedded;embeddedPrefix:company_" json:"company"`
	Location    string    `gorm:"size:255" json:"location"`
	Salary      float64   `json:"salary"`
	PostedDate  time.Time `json:"postedDate"`
	Status      string    `gorm:"size:16;not null;default:open" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Job) TableName() string { return "jobs" }

type JobRepository interface {
	List(ctx context.Context) ([]Job, error)
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id string) error
}
