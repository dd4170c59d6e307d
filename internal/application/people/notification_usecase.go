package people

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	MsgNotificationCreated = "Notificación creada correctamente"
	MsgNotificationFailed  = "Error al crear la notificación"
	MsgNotificationsFailed = "Error al cargar las notificaciones."
)

// md convierte el mensaje de la notificación a HTML. Sin WithUnsafe el HTML crudo se omite.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// RenderMarkdown HTML seguro del texto. Si la conversión falla devuelve el texto escapado.
func RenderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}
	return buf.String()
}

// NotificationUseCase avisos a usuarios.
type NotificationUseCase struct {
	backend Backend
	now     func() time.Time
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(backend Backend) *NotificationUseCase {
	return &NotificationUseCase{backend: backend, now: time.Now}
}

// Form usuarios destinatarios.
func (uc *NotificationUseCase) Form(ctx context.Context, token string) (*dto.NotificationFormResponse, error) {
	users, err := uc.backend.ListUsers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario notificación: %w", err)
	}
	return &dto.NotificationFormResponse{Users: users}, nil
}

// Create envía la notificación al backend en estado ACTIVE.
func (uc *NotificationUseCase) Create(ctx context.Context, token string, in dto.NotificationRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	shipping := uc.now()
	if in.ShippingDate != "" {
		t, err := parseDateTime(in.ShippingDate)
		if err != nil {
			return domain.NewValidationError(validation.MsgInvalidForm).With("shippingDate", "fecha no válida")
		}
		shipping = t
	}
	n := entity.Notification{
		Title:        in.Title,
		Message:      in.Message,
		ShippingDate: shipping.UTC().Format(time.RFC3339),
		Type:         in.Type,
		Status:       entity.StatusActive,
		UserIDs:      in.UserIDs,
	}
	if err := uc.backend.CreateNotification(ctx, token, n); err != nil {
		return fmt.Errorf("crear notificación: %w", err)
	}
	return nil
}

// List notificaciones con el mensaje convertido a HTML.
func (uc *NotificationUseCase) List(ctx context.Context, token string) ([]dto.NotificationView, error) {
	list, err := uc.backend.ListNotifications(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar notificaciones: %w", err)
	}
	out := make([]dto.NotificationView, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationView{Notification: n, MessageHTML: RenderMarkdown(n.Message)})
	}
	return out, nil
}

func parseDateTime(raw string) (time.Time, error) {
	var last error
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"} {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		last = err
	}
	return time.Time{}, last
}
