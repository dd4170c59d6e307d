package access

// MenuItem entrada del menú lateral.
type MenuItem struct {
	Label   string  `json:"label"`
	Path    string  `json:"path"`
	Section Section `json:"section"`
}

// MenuGroup grupo de entradas; Title vacío para entradas sueltas.
type MenuGroup struct {
	Title string     `json:"title,omitempty"`
	Items []MenuItem `json:"items"`
}

// LandingPath destino tras el login según el rol. Sin rol → punto de entrada del login.
func LandingPath(role Role) string {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return "/" + role.Slug() + "/dashboard"
	default:
		return "/"
	}
}

// Menu menú lateral del rol. Sin rol → vacío.
func Menu(role Role) []MenuGroup {
	switch role {
	case RoleAdmin:
		return []MenuGroup{
			{Items: []MenuItem{
				{Label: "Mi perfil", Path: "/admin/profile", Section: SectionProfile},
				{Label: "Dashboard", Path: "/admin/dashboard", Section: SectionDashboard},
			}},
			{Title: "Gestión de usuarios", Items: []MenuItem{
				{Label: "Usuarios", Path: "/admin/users", Section: SectionUsers},
				{Label: "Notificaciones", Path: "/admin/notifications", Section: SectionNotifications},
				{Label: "Historial de estudiantes", Path: "/admin/student-history", Section: SectionStudentHistory},
			}},
			{Title: "Gestión de clases", Items: []MenuItem{
				{Label: "Grupos", Path: "/admin/classes/groups", Section: SectionTrainingGroups},
				{Label: "Horario", Path: "/admin/classes/timetable", Section: SectionTimetable},
				{Label: "Sesiones", Path: "/admin/classes/sessions", Section: SectionTrainingSessions},
				{Label: "Asistencia", Path: "/admin/classes/assistance", Section: SectionAssistance},
				{Label: "Membresías", Path: "/admin/classes/memberships", Section: SectionMemberships},
			}},
			{Title: "Finanzas", Items: []MenuItem{
				{Label: "Facturas", Path: "/admin/finance/invoices", Section: SectionInvoices},
				{Label: "Pagos", Path: "/admin/finance/payments", Section: SectionPayments},
				{Label: "Productos y servicios", Path: "/admin/finance/products", Section: SectionProducts},
				{Label: "Tipos de IVA", Path: "/admin/finance/iva-types", Section: SectionIVATypes},
			}},
		}
	case RoleTeacher:
		return []MenuGroup{
			{Items: []MenuItem{
				{Label: "Mi perfil", Path: "/teacher/profile", Section: SectionProfile},
				{Label: "Dashboard", Path: "/teacher/dashboard", Section: SectionDashboard},
				{Label: "Mis estudiantes", Path: "/teacher/students", Section: SectionStudents},
			}},
			{Title: "Mis clases", Items: []MenuItem{
				{Label: "Grupos", Path: "/teacher/classes/groups", Section: SectionTrainingGroups},
				{Label: "Horario", Path: "/teacher/classes/timetable", Section: SectionTimetable},
				{Label: "Sesiones", Path: "/teacher/classes/sessions", Section: SectionTrainingSessions},
				{Label: "Asistencia", Path: "/teacher/classes/assistance", Section: SectionAssistance},
				{Label: "Historial", Path: "/teacher/student-history", Section: SectionStudentHistory},
			}},
		}
	case RoleStudent:
		return []MenuGroup{
			{Items: []MenuItem{
				{Label: "Mi perfil", Path: "/student/profile", Section: SectionProfile},
				{Label: "Dashboard", Path: "/student/dashboard", Section: SectionDashboard},
				{Label: "Mi historial", Path: "/student/history", Section: SectionMyHistory},
				{Label: "Mi horario", Path: "/student/timetable", Section: SectionTimetable},
				{Label: "Mis asistencias", Path: "/student/assistance", Section: SectionMyAssistance},
			}},
		}
	default:
		return nil
	}
}
