package domain

import "time"

type Contact struct {
	Phone    string
	Verified bool
}

// Artist is a seller account. Only the bcrypt hash of the password is kept.
type Artist struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	BusinessName   string
	Specialization []string
	DateOfBirth    time.Time
	About          string
	Contact        Contact
	Address        string
	City           string
	State          string
	Pincode        string
	Aadhar         string
	CreatedAt      time.Time
}
