package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad de la aplicación.
// Se añaden Role/Name/Email para que el middleware RBAC y los handlers puedan
// tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "owner" | "receptionist" | "mechanic" | "customer"
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Generate genera un token JWT firmado (HS256) con la identidad del usuario.
// expDays controla la vigencia; el valor por defecto de la aplicación es 7 días.
func Generate(secret, userID, role, name, email, issuer string, expDays int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expDays) * 24 * time.Hour)),
		},
		UserID: userID,
		Role:   role,
		Name:   name,
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de identidad.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
//
// Con el build tag `devauth` (y APP_ENV != production) se acepta además un
// token fijo de desarrollo; en builds de release ese camino no existe.
func Parse(secret, tokenString string) (*Claims, error) {
	if c := devTokenClaims(tokenString); c != nil {
		return c, nil
	}
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
	return claims, nil
}
