package entity

// TrainingGroup grupo de entrenamiento con horario y alumnos.
type TrainingGroup struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Level      string `json:"level"`
	Schedule   string `json:"schedule"`
	TeacherID  int    `json:"teacherId"`
	StudentIDs []int  `json:"studentIds"`
}

// HasStudent indica si el estudiante pertenece al grupo.
func (g TrainingGroup) HasStudent(studentID int) bool {
	for _, id := range g.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// TrainingSession sesión concreta de un grupo.
type TrainingSession struct {
	ID              int    `json:"id"`
	TrainingGroupID int    `json:"trainingGroupId"`
	Date            string `json:"date"`
	Status          Status `json:"status"`
}

// Assistance registro de asistencia de un estudiante a una sesión.
type Assistance struct {
	ID        int    `json:"id,omitempty"`
	StudentID int    `json:"studentId"`
	SessionID int    `json:"sessionId"`
	Date      string `json:"date"`
}

// Membership membresía con vigencia.
type Membership struct {
	ID        int            `json:"id,omitempty"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Type      MembershipType `json:"type"`
	Status    Status         `json:"status"`
}
