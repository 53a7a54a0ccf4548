package models

type Volunteer struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
}

type InsertVolunteer struct {
	Name         string `json:"name" binding:"required,min=2"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required,min=10"`
	Skills       string `json:"skills" binding:"required,min=5"`
	Availability string `json:"availability" binding:"required"`
}
