package entity

import "time"

// Staff roles. Admins manage the service catalog; staff create invoices.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a staff account of the shop.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleStaff
	CreatedAt    time.Time
}
