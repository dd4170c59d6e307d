package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/analytics"
	"github.com/jhoicas/memberflow-console/internal/application/auth"
	"github.com/jhoicas/memberflow-console/internal/application/billing"
	"github.com/jhoicas/memberflow-console/internal/application/classes"
	"github.com/jhoicas/memberflow-console/internal/application/people"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DashboardUC  *analytics.DashboardUseCase
	InvoiceUC    *billing.InvoiceUseCase
	PaymentUC    *billing.PaymentUseCase
	CatalogUC    *billing.CatalogUseCase
	UserUC       *people.UserUseCase
	NotifUC      *people.NotificationUseCase
	HistoryUC    *people.HistoryUseCase
	GroupUC      *classes.GroupUseCase
	SessionUC    *classes.SessionUseCase
	AssistanceUC *classes.AssistanceUseCase
	MembershipUC *classes.MembershipUseCase
	Resolver     *access.Resolver
	Cookie       CookieConfig
}

// Router registra las rutas de la API. Cada sección exige sesión y permiso del rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión)
	protected := api.Group("/", SessionMiddleware(deps.AuthUC, deps.Resolver, deps.Cookie.Name))
	protected.Get("/navigation", authHandler.Navigation)
	protected.Get("/dashboard", RequireSection(access.SectionDashboard), NewDashboardHandler(deps.DashboardUC).Summary)
	protected.Get("/profile", RequireSection(access.SectionProfile), authHandler.Profile)

	// Facturación
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices := protected.Group("/invoices", RequireSection(access.SectionInvoices))
	invoices.Get("/form", invoiceHandler.Form)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/preview/pdf", invoiceHandler.PreviewPDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Delete("/:id", invoiceHandler.Delete)

	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := protected.Group("/payments", RequireSection(access.SectionPayments))
	payments.Get("/form", paymentHandler.Form)
	payments.Get("/pending/:userId", paymentHandler.Pending)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Delete("/:id", paymentHandler.Delete)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := protected.Group("/products", RequireSection(access.SectionProducts))
	products.Get("/form", catalogHandler.ProductForm)
	products.Get("/", catalogHandler.ListProducts)
	products.Post("/", catalogHandler.CreateProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Delete("/:id", catalogHandler.DeleteProduct)

	ivaTypes := protected.Group("/iva-types", RequireSection(access.SectionIVATypes))
	ivaTypes.Get("/", catalogHandler.ListIVATypes)
	ivaTypes.Post("/", catalogHandler.CreateIVAType)
	ivaTypes.Delete("/:id", catalogHandler.DeleteIVAType)

	// Personas
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireSection(access.SectionUsers))
	users.Get("/form", userHandler.Form)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	protected.Get("/students", RequireSection(access.SectionStudents), userHandler.Students)

	notifHandler := NewNotificationHandler(deps.NotifUC)
	notifications := protected.Group("/notifications", RequireSection(access.SectionNotifications))
	notifications.Get("/form", notifHandler.Form)
	notifications.Post("/", notifHandler.Create)
	notifications.Get("/", notifHandler.List)

	historyHandler := NewHistoryHandler(deps.HistoryUC)
	history := protected.Group("/student-history", RequireSection(access.SectionStudentHistory))
	history.Get("/form", historyHandler.Form)
	history.Post("/", historyHandler.Create)
	history.Get("/", historyHandler.List)
	history.Delete("/:id", historyHandler.Delete)

	// Clases
	groupHandler := NewGroupHandler(deps.GroupUC)
	groups := protected.Group("/training-groups", RequireSection(access.SectionTrainingGroups))
	groups.Get("/form", groupHandler.Form)
	groups.Post("/", groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Put("/:id", groupHandler.Update)
	groups.Delete("/:id", groupHandler.Delete)
	groups.Get("/:id/students", groupHandler.Students)
	groups.Put("/:id/students/:studentId", groupHandler.Assign)
	groups.Delete("/:id/students/:studentId", groupHandler.Remove)
	protected.Get("/timetable", RequireSection(access.SectionTimetable), groupHandler.Timetable)

	sessionHandler := NewTrainingSessionHandler(deps.SessionUC)
	sessions := protected.Group("/training-sessions", RequireSection(access.SectionTrainingSessions))
	sessions.Get("/", sessionHandler.List)
	sessions.Delete("/:id", sessionHandler.Delete)

	assistanceHandler := NewAssistanceHandler(deps.AssistanceUC)
	assistance := protected.Group("/assistance", RequireSection(access.SectionAssistance))
	assistance.Get("/form", assistanceHandler.Form)
	assistance.Get("/sessions", assistanceHandler.Sessions)
	assistance.Post("/", assistanceHandler.Create)
	assistance.Get("/", assistanceHandler.List)

	membershipHandler := NewMembershipHandler(deps.MembershipUC)
	memberships := protected.Group("/memberships", RequireSection(access.SectionMemberships))
	memberships.Get("/", membershipHandler.List)
	memberships.Post("/", membershipHandler.Create)
	memberships.Put("/:id", membershipHandler.Update)
	memberships.Post("/assign", membershipHandler.Assign)

	// Vistas del estudiante
	me := protected.Group("/me")
	me.Get("/history", RequireSection(access.SectionMyHistory), historyHandler.Mine)
	me.Get("/assistance", RequireSection(access.SectionMyAssistance), assistanceHandler.Mine)
}
