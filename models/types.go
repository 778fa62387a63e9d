package models

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SubmitRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Phone    string `json:"phone"`
}

type CheckNumberRequest struct {
	Email string `json:"email"`
}

// Response types

type SubmitResponse struct {
	Message      string `json:"message"`
	TicketNumber *int   `json:"ticket_number,omitempty"`
}

type CheckNumberResponse struct {
	Status       string `json:"status"` // "pending" or "assigned"
	TicketNumber *int   `json:"ticket_number,omitempty"`
	Message      string `json:"message"`
}

type GenerateNumbersResponse struct {
	Generated bool `json:"generated"`
	Count     int  `json:"count"`
}

type FormStatusResponse struct {
	Accepting bool   `json:"accepting"`
	Mode      string `json:"mode"`
}

// AdminPanelResponse is the admin view of the day: current mode plus every
// submission in arrival order.
type AdminPanelResponse struct {
	Mode        string            `json:"mode"`
	Submissions []AdminSubmission `json:"submissions"`
}

type AdminSubmission struct {
	Email        string `json:"email"`
	FullName     string `json:"fullname"`
	Phone        string `json:"phone"`
	TicketNumber *int   `json:"ticket_number,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
