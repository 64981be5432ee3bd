//go:build !devauth

package jwt

// devTokenClaims no existe en builds de release: siempre nil.
func devTokenClaims(string) *Claims { return nil }
