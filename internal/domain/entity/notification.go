package entity

// Notification aviso enviado a uno o varios usuarios. Message admite Markdown.
type Notification struct {
	ID           int    `json:"id,omitempty"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	ShippingDate string `json:"shippingDate"`
	Type         string `json:"type"`
	Status       Status `json:"status"`
	UserIDs      []int  `json:"userIds"`
}

// StudentHistory evento del historial de un estudiante.
type StudentHistory struct {
	ID          int    `json:"id,omitempty"`
	StudentID   int    `json:"studentId"`
	EventDate   string `json:"eventDate"`
	EventType   string `json:"eventType"`
	Description string `json:"description"`
}
