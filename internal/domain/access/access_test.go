package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
	pkgjwt "github.com/jhoicas/memberflow-console/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func token(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, "user@memberflow.test", role, "memberflow", ttl)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveRole
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveRole_EtiquetasDePermiso(t *testing.T) {
	r := access.NewResolver("")
	cases := map[string]access.Role{
		"FULL_ACCESS":     access.RoleAdmin,
		"MANAGE_STUDENTS": access.RoleTeacher,
		"VIEW_OWN_DATA":   access.RoleStudent,
		"ROLE_ADMIN":      access.RoleAdmin,
		"ROLE_TEACHER":    access.RoleTeacher,
		"ROLE_STUDENT":    access.RoleStudent,
	}
	for claim, want := range cases {
		role, ok := r.ResolveRole(token(t, "cualquier-secreto", claim, time.Hour))
		assert.True(t, ok, claim)
		assert.Equal(t, want, role, claim)
	}
}

func TestResolveRole_SinToken(t *testing.T) {
	role, ok := access.NewResolver("").ResolveRole("")
	assert.False(t, ok)
	assert.Equal(t, access.RoleNone, role)
}

func TestResolveRole_SinClaimDeRol(t *testing.T) {
	role, ok := access.NewResolver(testSecret).ResolveRole(token(t, testSecret, "", time.Hour))
	assert.False(t, ok, "un token sin rol equivale a no tener permisos")
	assert.Equal(t, access.RoleNone, role)
}

func TestResolveRole_RolDesconocido(t *testing.T) {
	role, ok := access.NewResolver(testSecret).ResolveRole(token(t, testSecret, "SUPERUSER", time.Hour))
	assert.False(t, ok)
	assert.Equal(t, access.RoleNone, role)
}

func TestResolveRole_TokenMalFormadoNoEntraEnPanico(t *testing.T) {
	r := access.NewResolver("")
	for _, tok := range []string{"basura", "a.b.c", "eyJhbGciOiJIUzI1NiJ9..", "...."} {
		assert.NotPanics(t, func() {
			role, ok := r.ResolveRole(tok)
			assert.False(t, ok)
			assert.Equal(t, access.RoleNone, role)
		})
	}
}

func TestResolveRole_Expirado(t *testing.T) {
	tok := token(t, testSecret, "FULL_ACCESS", time.Minute)
	r := &access.Resolver{Secret: testSecret, Now: func() time.Time { return time.Now().Add(time.Hour) }}
	_, ok := r.ResolveRole(tok)
	assert.False(t, ok)
}

func TestResolveRole_FirmaInvalidaConSecreto(t *testing.T) {
	tok := token(t, "otro", "FULL_ACCESS", time.Hour)
	_, ok := access.NewResolver(testSecret).ResolveRole(tok)
	assert.False(t, ok)
}

func TestResolveRole_ResolverNil(t *testing.T) {
	var r *access.Resolver
	role, ok := r.ResolveRole("x")
	assert.False(t, ok)
	assert.Equal(t, access.RoleNone, role)
}

// ──────────────────────────────────────────────────────────────────────────────
// IsPermitted
// ──────────────────────────────────────────────────────────────────────────────

func TestIsPermitted_Tabla(t *testing.T) {
	assert.True(t, access.IsPermitted(access.RoleAdmin, access.SectionInvoices))
	assert.True(t, access.IsPermitted(access.RoleTeacher, access.SectionAssistance))
	assert.True(t, access.IsPermitted(access.RoleStudent, access.SectionMyHistory))

	assert.False(t, access.IsPermitted(access.RoleTeacher, access.SectionInvoices))
	assert.False(t, access.IsPermitted(access.RoleStudent, access.SectionUsers))
	assert.False(t, access.IsPermitted(access.RoleAdmin, access.SectionMyAssistance))
}

func TestIsPermitted_RolOSeccionDesconocidos(t *testing.T) {
	for _, s := range access.Sections() {
		assert.False(t, access.IsPermitted(access.RoleNone, s), "RoleNone no tiene permisos (%s)", s)
		assert.False(t, access.IsPermitted(access.Role(99), s))
	}
	assert.False(t, access.IsPermitted(access.RoleAdmin, access.Section("secret-admin-panel")))
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, access.Authorize(access.RoleAdmin, access.SectionInvoices))

	err := access.Authorize(access.RoleStudent, access.SectionInvoices)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Menú y destino
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_SoloSeccionesPermitidas(t *testing.T) {
	for _, role := range []access.Role{access.RoleAdmin, access.RoleTeacher, access.RoleStudent} {
		menu := access.Menu(role)
		require.NotEmpty(t, menu, role.Slug())
		for _, g := range menu {
			for _, item := range g.Items {
				assert.True(t, access.IsPermitted(role, item.Section),
					"%s no debe ver %s en el menú", role.Slug(), item.Section)
			}
		}
	}
	assert.Empty(t, access.Menu(access.RoleNone))
}

func TestLandingPath(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", access.LandingPath(access.RoleAdmin))
	assert.Equal(t, "/teacher/dashboard", access.LandingPath(access.RoleTeacher))
	assert.Equal(t, "/student/dashboard", access.LandingPath(access.RoleStudent))
	assert.Equal(t, "/", access.LandingPath(access.RoleNone))
}
