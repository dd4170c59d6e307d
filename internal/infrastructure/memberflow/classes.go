package memberflow

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

func intQuery(params map[string]int) url.Values {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, strconv.Itoa(v))
	}
	return q
}

// ListTrainingGroups GET /training-groups/getAll.
func (c *Client) ListTrainingGroups(ctx context.Context, token string) ([]entity.TrainingGroup, error) {
	var out []entity.TrainingGroup
	err := c.do(ctx, call{op: "trainingGroups.getAll", method: http.MethodGet, path: "/training-groups/getAll", token: token}, &out)
	return out, err
}

// GetTrainingGroup GET /training-groups/findById/{id}.
func (c *Client) GetTrainingGroup(ctx context.Context, token string, id int) (*entity.TrainingGroup, error) {
	var out entity.TrainingGroup
	err := c.do(ctx, call{
		op: "trainingGroups.findById", method: http.MethodGet, path: idPath("/training-groups/findById/%d", id), token: token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTrainingGroup POST /training-groups/create.
func (c *Client) CreateTrainingGroup(ctx context.Context, token string, g entity.TrainingGroup) error {
	return c.do(ctx, call{op: "trainingGroups.create", method: http.MethodPost, path: "/training-groups/create", body: g, token: token}, nil)
}

// UpdateTrainingGroup PUT /training-groups/update/{id}.
func (c *Client) UpdateTrainingGroup(ctx context.Context, token string, id int, g entity.TrainingGroup) error {
	return c.do(ctx, call{
		op: "trainingGroups.update", method: http.MethodPut, path: idPath("/training-groups/update/%d", id), body: g, token: token,
	}, nil)
}

// DeleteTrainingGroup DELETE /training-groups/delete/{id}.
func (c *Client) DeleteTrainingGroup(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{
		op: "trainingGroups.delete", method: http.MethodDelete, path: idPath("/training-groups/delete/%d", id), token: token,
	}, nil)
}

// AssignStudent PUT /training-groups/assign-student?groupId=&studentId=.
func (c *Client) AssignStudent(ctx context.Context, token string, groupID, studentID int) error {
	return c.do(ctx, call{
		op: "trainingGroups.assignStudent", method: http.MethodPut, path: "/training-groups/assign-student",
		query: intQuery(map[string]int{"groupId": groupID, "studentId": studentID}), token: token,
	}, nil)
}

// RemoveStudent PUT /training-groups/remove-student?groupId=&studentId=.
func (c *Client) RemoveStudent(ctx context.Context, token string, groupID, studentID int) error {
	return c.do(ctx, call{
		op: "trainingGroups.removeStudent", method: http.MethodPut, path: "/training-groups/remove-student",
		query: intQuery(map[string]int{"groupId": groupID, "studentId": studentID}), token: token,
	}, nil)
}

// ListTrainingSessions GET /training-sessions/getAll.
func (c *Client) ListTrainingSessions(ctx context.Context, token string) ([]entity.TrainingSession, error) {
	var out []entity.TrainingSession
	err := c.do(ctx, call{op: "trainingSessions.getAll", method: http.MethodGet, path: "/training-sessions/getAll", token: token}, &out)
	return out, err
}

// DeleteTrainingSession DELETE /training-sessions/delete/{id}.
func (c *Client) DeleteTrainingSession(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{
		op: "trainingSessions.delete", method: http.MethodDelete, path: idPath("/training-sessions/delete/%d", id), token: token,
	}, nil)
}

// ListAssistances GET /assistances/getAll.
func (c *Client) ListAssistances(ctx context.Context, token string) ([]entity.Assistance, error) {
	var out []entity.Assistance
	err := c.do(ctx, call{op: "assistances.getAll", method: http.MethodGet, path: "/assistances/getAll", token: token}, &out)
	return out, err
}

// CreateAssistance POST /assistances/create.
func (c *Client) CreateAssistance(ctx context.Context, token string, a entity.Assistance) error {
	return c.do(ctx, call{op: "assistances.create", method: http.MethodPost, path: "/assistances/create", body: a, token: token}, nil)
}

// ListMemberships GET /memberships/getAll.
func (c *Client) ListMemberships(ctx context.Context, token string) ([]entity.Membership, error) {
	var out []entity.Membership
	err := c.do(ctx, call{op: "memberships.getAll", method: http.MethodGet, path: "/memberships/getAll", token: token}, &out)
	return out, err
}

// CreateMembership POST /memberships/create.
func (c *Client) CreateMembership(ctx context.Context, token string, m entity.Membership) error {
	return c.do(ctx, call{op: "memberships.create", method: http.MethodPost, path: "/memberships/create", body: m, token: token}, nil)
}

// UpdateMembership PUT /memberships/update/{id}.
func (c *Client) UpdateMembership(ctx context.Context, token string, id int, m entity.Membership) error {
	return c.do(ctx, call{
		op: "memberships.update", method: http.MethodPut, path: idPath("/memberships/update/%d", id), body: m, token: token,
	}, nil)
}
