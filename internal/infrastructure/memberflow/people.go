package memberflow

import (
	"context"
	"net/http"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// ListUsers GET /users/getAll.
func (c *Client) ListUsers(ctx context.Context, token string) ([]entity.User, error) {
	var out []entity.User
	err := c.do(ctx, call{op: "users.getAll", method: http.MethodGet, path: "/users/getAll", token: token}, &out)
	return out, err
}

// UpdateUser PUT /users/update/{id}.
func (c *Client) UpdateUser(ctx context.Context, token string, id int, u entity.User) error {
	return c.do(ctx, call{
		op: "users.update", method: http.MethodPut, path: idPath("/users/update/%d", id), body: u, token: token,
	}, nil)
}

// DeleteUser DELETE /users/delete/{id}.
func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{op: "users.delete", method: http.MethodDelete, path: idPath("/users/delete/%d", id), token: token}, nil)
}

// ListRoles GET /roles/getAll.
func (c *Client) ListRoles(ctx context.Context, token string) ([]entity.Role, error) {
	var out []entity.Role
	err := c.do(ctx, call{op: "roles.getAll", method: http.MethodGet, path: "/roles/getAll", token: token}, &out)
	return out, err
}

// ListStudents GET /students/getAll.
func (c *Client) ListStudents(ctx context.Context, token string) ([]entity.Student, error) {
	var out []entity.Student
	err := c.do(ctx, call{op: "students.getAll", method: http.MethodGet, path: "/students/getAll", token: token}, &out)
	return out, err
}

// RegisterStudent POST /students/register (crea usuario y ficha de estudiante).
func (c *Client) RegisterStudent(ctx context.Context, token string, in entity.StudentRegistration) error {
	return c.do(ctx, call{op: "students.register", method: http.MethodPost, path: "/students/register", body: in, token: token}, nil)
}

// UpdateStudentMembership PUT /students/updateMembership/{studentId}?membershipId=.
func (c *Client) UpdateStudentMembership(ctx context.Context, token string, studentID, membershipID int) error {
	return c.do(ctx, call{
		op: "students.updateMembership", method: http.MethodPut,
		path:  idPath("/students/updateMembership/%d", studentID),
		query: intQuery(map[string]int{"membershipId": membershipID}), token: token,
	}, nil)
}

// ListTeachers GET /teachers/getAll.
func (c *Client) ListTeachers(ctx context.Context, token string) ([]entity.Teacher, error) {
	var out []entity.Teacher
	err := c.do(ctx, call{op: "teachers.getAll", method: http.MethodGet, path: "/teachers/getAll", token: token}, &out)
	return out, err
}

// CreateTeacher POST /teachers/create.
func (c *Client) CreateTeacher(ctx context.Context, token string, t entity.Teacher) error {
	return c.do(ctx, call{op: "teachers.create", method: http.MethodPost, path: "/teachers/create", body: t, token: token}, nil)
}

// CreateAdmin POST /admins/create.
func (c *Client) CreateAdmin(ctx context.Context, token string, a entity.Admin) error {
	return c.do(ctx, call{op: "admins.create", method: http.MethodPost, path: "/admins/create", body: a, token: token}, nil)
}

// ListNotifications GET /notifications/getAll.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]entity.Notification, error) {
	var out []entity.Notification
	err := c.do(ctx, call{op: "notifications.getAll", method: http.MethodGet, path: "/notifications/getAll", token: token}, &out)
	return out, err
}

// CreateNotification POST /notifications/create.
func (c *Client) CreateNotification(ctx context.Context, token string, n entity.Notification) error {
	return c.do(ctx, call{op: "notifications.create", method: http.MethodPost, path: "/notifications/create", body: n, token: token}, nil)
}

// ListStudentHistory GET /student-history/getAll.
func (c *Client) ListStudentHistory(ctx context.Context, token string) ([]entity.StudentHistory, error) {
	var out []entity.StudentHistory
	err := c.do(ctx, call{op: "studentHistory.getAll", method: http.MethodGet, path: "/student-history/getAll", token: token}, &out)
	return out, err
}

// CreateStudentHistory POST /student-history/create.
func (c *Client) CreateStudentHistory(ctx context.Context, token string, h entity.StudentHistory) error {
	return c.do(ctx, call{op: "studentHistory.create", method: http.MethodPost, path: "/student-history/create", body: h, token: token}, nil)
}

// DeleteStudentHistory DELETE /student-history/delete/{id}.
func (c *Client) DeleteStudentHistory(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{
		op: "studentHistory.delete", method: http.MethodDelete, path: idPath("/student-history/delete/%d", id), token: token,
	}, nil)
}
