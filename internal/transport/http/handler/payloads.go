package handler

import (
	"fmt"
	"strings"
	"time"
)

// jsonDate accepts both RFC3339 timestamps and bare yyyy-mm-dd dates; the
// SPA's date inputs send the latter.
type jsonDate struct{ time.Time }

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

type companyPayload struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"required"`
}

type createJobPayload struct {
	Title       string         `json:"title" validate:"required"`
	Type        string         `json:"type" validate:"required,oneof=Full-Time Part-Time Remote Internship"`
	Description string         `json:"description" validate:"required"`
	Company     companyPayload `json:"company"`
	Location    string         `json:"location" validate:"required"`
	Salary      *float64       `json:"salary" validate:"required"`
	PostedDate  *jsonDate      `json:"postedDate"`
	Status      string         `json:"status" validate:"omitempty,oneof=open closed"`
}

type updateCompanyPayload struct {
	Name         *string `json:"name" validate:"omitnil,min=1"`
	ContactEmail *string `json:"contactEmail" validate:"omitnil,email"`
	ContactPhone *string `json:"contactPhone" validate:"omitnil,min=1"`
}

// updateJobPayload is a partial document: only supplied fields are merged
// into the stored record. omitnil (not omitempty) so that an explicit
// empty string counts as supplied and still has to pass the field checks —
// a partial update may not blank out a required or enumerated field.
type updateJobPayload struct {
	Title       *string               `json:"title" validate:"omitnil,min=1"`
	Type        *string               `json:"type" validate:"omitnil,oneof=Full-Time Part-Time Remote Internship"`
	Description *string               `json:"description"`
	Company     *updateCompanyPayload `json:"company"`
	Location    *string               `json:"location"`
	Salary      *float64              `json:"salary"`
	PostedDate  *jsonDate             `json:"postedDate"`
	Status      *string               `json:"status" validate:"omitnil,oneof=open closed"`
}

type signupPayload struct {
	Name             string `json:"name" validate:"required"`
	Username         string `json:"username" validate:"required"`
	Password         string `json:"password" validate:"required,min=6"`
	Email            string `json:"email" validate:"omitempty,email"`
	PhoneNumber      string `json:"phone_number"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	MembershipStatus string `json:"membership_status"`
	Address          string `json:"address"`
	ProfilePicture   string `json:"profile_picture" validate:"omitempty,url"`
}

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
