package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/memberflow-console/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestParse_ConSecreto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "admin@memberflow.test", "FULL_ACCESS", "memberflow", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "FULL_ACCESS", claims.Role)
	assert.Equal(t, "admin@memberflow.test", claims.Subject)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", "a@b.c", "FULL_ACCESS", "", time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, time.Now())
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

func TestParse_SinSecretoSoloDecodifica(t *testing.T) {
	tok, err := pkgjwt.Generate("firmado-por-el-backend", "t@b.c", "MANAGE_STUDENTS", "", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse("", tok, time.Now())
	require.NoError(t, err, "sin secreto no se verifica la firma")
	assert.Equal(t, "MANAGE_STUDENTS", claims.Role)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "s@b.c", "VIEW_OWN_DATA", "", time.Minute)
	require.NoError(t, err)
	later := time.Now().Add(2 * time.Minute)

	_, err = pkgjwt.Parse(testSecret, tok, later)
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)

	_, err = pkgjwt.Parse("", tok, later)
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

func TestParse_TokenMalFormado(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b.c", "e30.e30"} {
		_, err := pkgjwt.Parse("", tok, time.Now())
		assert.ErrorIs(t, err, pkgjwt.ErrMalformed, "token %q", tok)
	}
}
