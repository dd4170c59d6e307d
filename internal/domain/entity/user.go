package entity

// User usuario del backend; RoleName es ROLE_ADMIN, ROLE_TEACHER o ROLE_STUDENT.
type User struct {
	ID           int          `json:"id,omitempty"`
	Name         string       `json:"name"`
	Surname      string       `json:"surname"`
	Email        string       `json:"email"`
	Password     string       `json:"password,omitempty"`
	PhoneNumber  string       `json:"phoneNumber,omitempty"`
	Address      string       `json:"address,omitempty"`
	RegisterDate string       `json:"registerDate,omitempty"`
	RoleName     string       `json:"roleName,omitempty"`
	Status       Status       `json:"status,omitempty"`
	Student      *StudentMini `json:"student,omitempty"`
}

// FullName nombre y apellidos.
func (u User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

// StudentMini referencia al estudiante desde /users/me.
type StudentMini struct {
	ID int `json:"id"`
}

// Student ficha de estudiante.
type Student struct {
	ID             int             `json:"id"`
	User           User            `json:"user"`
	DNI            string          `json:"dni"`
	Birthdate      string          `json:"birthdate,omitempty"`
	Belt           string          `json:"belt,omitempty"`
	Progress       string          `json:"progress,omitempty"`
	MedicalReport  string          `json:"medicalReport,omitempty"`
	ParentName     string          `json:"parentName,omitempty"`
	MembershipID   *int            `json:"membershipId,omitempty"`
	TrainingGroups []TrainingGroup `json:"trainingGroups,omitempty"`
	Membership     *Membership     `json:"membership,omitempty"`
}

// StudentRegistration cuerpo de /students/register.
type StudentRegistration struct {
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	RoleName      string `json:"roleName"`
	Status        Status `json:"status"`
	DNI           string `json:"dni"`
	Birthdate     string `json:"birthdate,omitempty"`
	Belt          string `json:"belt,omitempty"`
	Progress      string `json:"progress,omitempty"`
	MedicalReport string `json:"medicalReport,omitempty"`
	ParentName    string `json:"parentName,omitempty"`
	MembershipID  *int   `json:"membershipId,omitempty"`
}

// Teacher profesor con su disciplina.
type Teacher struct {
	ID         int    `json:"id,omitempty"`
	User       User   `json:"user"`
	Discipline string `json:"discipline"`
}

// Admin administrador.
type Admin struct {
	ID   int  `json:"id,omitempty"`
	User User `json:"user"`
}

// Role rol disponible en el backend.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
