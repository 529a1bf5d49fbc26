package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/claims-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "claims-api-test"
)

var testPayload = pkgjwt.Payload{
	UserID:     "00000000-0000-0000-0000-000000000001",
	Email:      "manager@provider.com",
	Role:       "manager",
	ProviderID: "00000000-0000-0000-0000-0000000000aa",
}

func TestGenerateAndParse_ConservaPayload(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testPayload, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testPayload, *got)
}

func TestGenerateAndParse_SinProvider(t *testing.T) {
	p := pkgjwt.Payload{UserID: "u1", Email: "a@x.com", Role: "claimant"}
	tok, err := pkgjwt.Generate(testSecret, p, testIssuer, 60)
	require.NoError(t, err)

	got, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Empty(t, got.ProviderID)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testPayload, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testPayload, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_Malformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testPayload, testIssuer, 60)
	assert.Error(t, err)
}
