package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmetify/admin-api/pkg/token"
)

// firma con un secreto arbitrario: Peek no verifica, solo decodifica.
func buildToken(t *testing.T, claims token.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("cualquier-secreto"))
	require.NoError(t, err)
	return tok
}

func TestPeek_LeeClaimsSinVerificarFirma(t *testing.T) {
	tok := buildToken(t, token.Claims{
		UserID:   "u-1",
		TenantID: "tenant-1",
		Role:     "ADMIN",
	})

	claims, err := token.Peek(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestPeek_TokenMalformado_Error(t *testing.T) {
	_, err := token.Peek("no.es.jwt")
	assert.Error(t, err)

	_, err = token.Peek("")
	assert.Error(t, err)
}

func TestExpiresWithin_TokenVigente(t *testing.T) {
	tok := buildToken(t, token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	assert.False(t, token.ExpiresWithin(tok, time.Minute))
	assert.True(t, token.ExpiresWithin(tok, 2*time.Hour),
		"dentro de la ventana pedida debe reportarse como por expirar")
}

func TestExpiresWithin_SinExpOIlegible_SeReportaExpirado(t *testing.T) {
	sinExp := buildToken(t, token.Claims{UserID: "u-1"})
	assert.True(t, token.ExpiresWithin(sinExp, time.Minute),
		"sin claim exp el caller debe asumir que toca refrescar")
	assert.True(t, token.ExpiresWithin("basura", time.Minute))
}
