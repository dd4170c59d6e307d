package access

import (
	"fmt"

	"github.com/jhoicas/memberflow-console/internal/domain"
)

// Section sección navegable de la consola.
type Section string

const (
	SectionProfile          Section = "profile"
	SectionDashboard        Section = "dashboard"
	SectionUsers            Section = "users"
	SectionNotifications    Section = "notifications"
	SectionStudentHistory   Section = "student-history"
	SectionStudents         Section = "students"
	SectionTrainingGroups   Section = "training-groups"
	SectionTimetable        Section = "timetable"
	SectionTrainingSessions Section = "training-sessions"
	SectionAssistance       Section = "assistance"
	SectionMemberships      Section = "memberships"
	SectionInvoices         Section = "invoices"
	SectionPayments         Section = "payments"
	SectionProducts         Section = "products"
	SectionIVATypes         Section = "iva-types"
	SectionMyHistory        Section = "my-history"
	SectionMyAssistance     Section = "my-assistance"
)

var allSections = []Section{
	SectionProfile, SectionDashboard, SectionUsers, SectionNotifications, SectionStudentHistory,
	SectionStudents, SectionTrainingGroups, SectionTimetable, SectionTrainingSessions,
	SectionAssistance, SectionMemberships, SectionInvoices, SectionPayments, SectionProducts,
	SectionIVATypes, SectionMyHistory, SectionMyAssistance,
}

// Sections lista todas las secciones conocidas.
func Sections() []Section {
	out := make([]Section, len(allSections))
	copy(out, allSections)
	return out
}

func set(sections ...Section) map[Section]struct{} {
	m := make(map[Section]struct{}, len(sections))
	for _, s := range sections {
		m[s] = struct{}{}
	}
	return m
}

// permissions tabla estática rol → secciones. Se fija al compilar.
var permissions = map[Role]map[Section]struct{}{
	RoleAdmin: set(
		SectionProfile, SectionDashboard, SectionUsers, SectionNotifications, SectionStudentHistory,
		SectionStudents, SectionTrainingGroups, SectionTimetable, SectionTrainingSessions,
		SectionAssistance, SectionMemberships, SectionInvoices, SectionPayments, SectionProducts,
		SectionIVATypes,
	),
	RoleTeacher: set(
		SectionProfile, SectionDashboard, SectionStudentHistory, SectionStudents,
		SectionTrainingGroups, SectionTimetable, SectionTrainingSessions, SectionAssistance,
	),
	RoleStudent: set(
		SectionProfile, SectionDashboard, SectionTimetable, SectionMyHistory, SectionMyAssistance,
	),
}

// IsPermitted consulta la tabla. Rol o sección desconocidos → false.
func IsPermitted(role Role, section Section) bool {
	allowed, ok := permissions[role]
	if !ok {
		return false
	}
	_, ok = allowed[section]
	return ok
}

// Authorize devuelve domain.ErrForbidden si el rol no tiene la sección.
func Authorize(role Role, section Section) error {
	if !IsPermitted(role, section) {
		return fmt.Errorf("%w: %s sin acceso a %s", domain.ErrForbidden, role.Slug(), section)
	}
	return nil
}
