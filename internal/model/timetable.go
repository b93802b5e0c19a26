package model

import "time"

// TimetableEntry is one scheduled class. None of the text fields are validated.
type TimetableEntry struct {
	ID          string    `json:"id" bson:"_id"`
	StudentName string    `json:"studentName" bson:"studentName"`
	Subject     string    `json:"subject" bson:"subject"`
	ClassDay    string    `json:"classDay" bson:"classDay"`
	ClassTime   string    `json:"classTime" bson:"classTime"`
	Link        string    `json:"link" bson:"link"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
}

// CreateTimetableRequest is used for creating a new timetable entry
type CreateTimetableRequest struct {
	StudentName string `form:"studentName" json:"studentName"`
	Subject     string `form:"subject" json:"subject"`
	ClassDay    string `form:"classDay" json:"classDay"`
	ClassTime   string `form:"classTime" json:"classTime"`
	Link        string `form:"link" json:"link"`
}
