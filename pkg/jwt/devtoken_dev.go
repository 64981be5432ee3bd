//go:build devauth

package jwt

import "os"

// DevToken token fijo aceptado sin verificación de firma, solo para pruebas
// locales del frontend. Requiere compilar con -tags devauth y además que
// APP_ENV no sea production.
const DevToken = "dev-taller-token"

func devTokenClaims(tokenString string) *Claims {
	if tokenString != DevToken || os.Getenv("APP_ENV") == "production" {
		return nil
	}
	return &Claims{
		UserID: "dev-user",
		Role:   "owner",
		Name:   "Dev",
		Email:  "dev@taller.local",
	}
}
