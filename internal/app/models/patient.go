package models

import "time"

// Patient is the persisted shape of a subject-of-care record. DateOfBirth is
// stored as a BSON datetime pinned to midnight UTC.
type Patient struct {
	ID          string    `bson:"_id,omitempty"`
	MRN         string    `bson:"mrn"`
	FirstName   string    `bson:"first_name"`
	LastName    string    `bson:"last_name"`
	DateOfBirth time.Time `bson:"date_of_birth"`
}
