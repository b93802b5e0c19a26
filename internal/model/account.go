package model

import "time"

// AccountKind discriminates the two independent account stores
type AccountKind string

const (
	KindStudent AccountKind = "student"
	KindAdmin   AccountKind = "admin"
)

func (k AccountKind) Valid() bool {
	return k == KindStudent || k == KindAdmin
}

// Student is a student signed up through the public form
type Student struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	PasswordHash string    `json:"-" bson:"passwordHash"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
}

// Admin is an administrator allowed to populate the timetable
type Admin struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	IsAdmin      bool      `json:"is_admin" bson:"isAdmin"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
}

// SignupStudentRequest carries the public signup form. Field names follow the form inputs.
type SignupStudentRequest struct {
	Name     string `form:"studentName" json:"studentName"`
	Email    string `form:"parentEmail" json:"parentEmail" validate:"required,emailaddr"`
	Phone    string `form:"parentPhone" json:"parentPhone" validate:"required,phone"`
	Password string `form:"password" json:"password" validate:"required,min=6,maxbytes=72"`
}

// SignupAdminRequest carries the admin signup form
type SignupAdminRequest struct {
	Email    string `form:"email" json:"email" validate:"required,emailaddr"`
	Password string `form:"password" json:"password" validate:"required,min=6,maxbytes=72"`
}

// LoginRequest is shared by student and admin login
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}
