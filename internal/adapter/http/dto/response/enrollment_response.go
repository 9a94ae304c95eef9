package response

import (
	"time"

	"escola_crm/internal/domain/entities"
)

type BudgetResponse struct {
	PeriodID    string  `json:"period_id"`
	PeriodToken string  `json:"period_token"`
	PeriodName  string  `json:"period_name"`
	Price       float64 `json:"price"`
	Hours       int     `json:"hours"`
}

type StepsResponse struct {
	Step1Done bool       `json:"step1_done"`
	Step1At   *time.Time `json:"step1_at,omitempty"`
	Step2Done bool       `json:"step2_done"`
	Step2At   *time.Time `json:"step2_at,omitempty"`
}

type EnrollmentResponse struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id"`
	CourseID    string         `json:"course_id"`
	ClassID     string         `json:"class_id,omitempty"`
	Subtotal    float64        `json:"subtotal"`
	Discount    float64        `json:"discount"`
	Total       float64        `json:"total"`
	Budget      BudgetResponse `json:"budget"`
	Steps       StepsResponse  `json:"steps"`
	PublicToken string         `json:"public_token"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func FromEnrollment(e entities.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:       e.ID,
		ClientID: e.ClientID,
		CourseID: e.CourseID,
		ClassID:  e.ClassID,
		Subtotal: e.Subtotal,
		Discount: e.Discount,
		Total:    e.Total,
		Budget: BudgetResponse{
			PeriodID:    e.Budget.PeriodID,
			PeriodToken: e.Budget.PeriodToken,
			PeriodName:  e.Budget.PeriodName,
			Price:       e.Budget.Price,
			Hours:       e.Budget.Hours,
		},
		Steps: StepsResponse{
			Step1Done: e.Steps.Step1Done,
			Step1At:   e.Steps.Step1At,
			Step2Done: e.Steps.Step2Done,
			Step2At:   e.Steps.Step2At,
		},
		PublicToken: e.PublicToken,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
