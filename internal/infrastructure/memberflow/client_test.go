package memberflow_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/memberflow"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/metrics"
)

const testToken = "tok-123"

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newClient(t *testing.T, h http.HandlerFunc) *memberflow.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	m := metrics.NewBackendMetrics(metrics.NewRegistry(), "test", "test")
	return memberflow.NewClient(srv.URL+"/api/v1", 2*time.Second, m, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login no lleva token")
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@mf.es", body["email"])
		_, _ = io.WriteString(w, `{"token": "jwt-abc"}`)
	})

	tok, err := c.Login(context.Background(), "ana@mf.es", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", tok)
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
	})

	_, err := c.Login(context.Background(), "ana@mf.es", "mal")
	var rerr *domain.RemoteError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusUnauthorized, rerr.Status)
	assert.Equal(t, "Bad credentials", rerr.Message)
	assert.ErrorIs(t, err, domain.ErrBackend)
}

func TestListProducts_EnviaBearerYDecodifica(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/products-services/getAll", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"name":"Cuota","price":100.00,"type":"SERVICE","status":"ACTIVE",
			"ivaTypeId":2,"ivaType":{"id":2,"percentage":21,"description":"General"}},
			{"id":2,"name":"Seguro","price":10,"type":"SERVICE","status":"ACTIVE"}]`)
	})

	products, err := c.ListProducts(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(products[0].Price))
	require.NotNil(t, products[0].IVAType)
	assert.True(t, decimal.NewFromInt(21).Equal(products[0].IVAType.Percentage))
	assert.Nil(t, products[1].IVAType)
}

func TestErrorServidor_EsRemoteError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	})

	_, err := c.ListInvoices(context.Background(), testToken)
	var rerr *domain.RemoteError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusInternalServerError, rerr.Status)
	assert.Equal(t, "invoices.getAll", rerr.Op)
}

func TestForbidden_SinTratamientoEspecial(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := c.DeleteUser(context.Background(), testToken, 4)
	var rerr *domain.RemoteError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusForbidden, rerr.Status)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestBackendCaido_EsRemoteErrorConEstadoCero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	c := memberflow.NewClient(url, time.Second, nil, nil)

	_, err := c.ListUsers(context.Background(), testToken)
	var rerr *domain.RemoteError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 0, rerr.Status)
}

func TestRespuestaNoValida(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	})

	_, err := c.ListRoles(context.Background(), testToken)
	assert.ErrorIs(t, err, domain.ErrBackend)
}

func TestCreateInvoiceWithLines_Cuerpo(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/invoices/createInvoiceWithLines", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "NOT_PAID", body["status"])
		assert.EqualValues(t, 7, body["userId"])
		lines := body["lines"].([]any)
		require.Len(t, lines, 1)
		assert.EqualValues(t, 2, lines[0].(map[string]any)["quantity"])
		writeJSON(w, http.StatusCreated, map[string]any{"id": 31, "userId": 7, "total": 242, "status": "NOT_PAID"})
	})

	inv, err := c.CreateInvoiceWithLines(context.Background(), testToken, entity.NewInvoice{
		UserID: 7, Status: entity.StatusNotPaid, Total: decimal.NewFromInt(242),
		Lines: []entity.NewInvoiceLine{{ProductServiceID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 31, inv.ID)
}

func TestInvoicePDF_BytesSinModificar(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/invoices/generatePDFById/9", r.URL.Path)
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	})

	got, err := c.InvoicePDF(context.Background(), testToken, 9)
	require.NoError(t, err)
	assert.Equal(t, pdf, got)
}

func TestAssignStudent_QueryParams(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/training-groups/assign-student", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("groupId"))
		assert.Equal(t, "8", r.URL.Query().Get("studentId"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.AssignStudent(context.Background(), testToken, 3, 8))
}

func TestUpdateStudentMembership_QueryParam(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/students/updateMembership/5", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("membershipId"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.UpdateStudentMembership(context.Background(), testToken, 5, 2))
}
