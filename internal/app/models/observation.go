package models

import "time"

// Observation references its patient by hex id only. There is no foreign key
// across collections; the parent is checked once, at creation time.
type Observation struct {
	ID        string    `bson:"_id,omitempty"`
	PatientID string    `bson:"patient_id"`
	Type      string    `bson:"type"`
	Value     string    `bson:"value"`
	Unit      string    `bson:"unit"`
	Timestamp time.Time `bson:"timestamp"`
}
