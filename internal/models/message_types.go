package models

import "time"

type ContactMessage struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Subscription struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}

type PlanSubmission struct {
	ID          int64     `json:"id" db:"id"`
	FullName    string    `json:"fullName" db:"fullName"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Company     string    `json:"company" db:"company"`
	Plan        string    `json:"plan" db:"plan"`
	Price       string    `json:"price" db:"price"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}
