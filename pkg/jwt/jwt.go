package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload datos de identidad que viajan dentro del token.
type Payload struct {
	UserID     string
	Email      string
	Role       string // "manager" | "claimant"
	ProviderID string // solo para managers
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role y ProviderID permiten autorizar sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ProviderID string `json:"providerId,omitempty"`
}

// Generate firma un token HS256 con el payload y una expiración de expMinutes.
func Generate(secret string, p Payload, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     p.UserID,
		Email:      p.Email,
		Role:       p.Role,
		ProviderID: p.ProviderID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve el payload.
func Parse(secret, tokenString string) (*Payload, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("jwt: token sin id de usuario")
	}
	return &Payload{
		UserID:     claims.UserID,
		Email:      claims.Email,
		Role:       claims.Role,
		ProviderID: claims.ProviderID,
	}, nil
}
