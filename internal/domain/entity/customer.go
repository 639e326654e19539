package entity

import "time"

// Customer is a vehicle owner identified by the license plate.
// Customers are created on the first invoice that references an unseen plate
// and are never mutated or deleted afterwards.
type Customer struct {
	ID        string
	Name      string
	Plate     string // KFZ-Kennzeichen, unique
	Phone     string // optional
	CreatedAt time.Time
}
