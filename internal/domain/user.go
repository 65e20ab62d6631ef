package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string `gorm:"size:64;not null" json:"name"`
	Username     string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string `gorm:"size:255" json:"email,omitempty"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`

	PhoneNumber      string `gorm:"size:32" json:"phone_number,omitempty"`
	Gender           string `gorm:"size:16" json:"gender,omitempty"`
	DateOfBirth      string `gorm:"size:32" json:"date_of_birth,omitempty"`
	MembershipStatus string `gorm:"size:16" json:"membership_status,omitempty"`
	Address          string `gorm:"size:255" json:"address,omitempty"`
	ProfilePicture   string `gorm:"size:512" json:"profile_picture,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}
