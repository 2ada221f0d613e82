package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el contexto del actor que el
// servicio de identidad externo emite. BranchID en 0 significa sin
// restricción de sucursal.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64 `json:"user_id"`
	CompanyID int64 `json:"company_id"`
	BranchID  int64 `json:"branch_id,omitempty"`
}

// Generate genera un token firmado con el contexto del actor. El servicio no
// emite tokens en producción (eso es del servicio de identidad); se usa en
// tests y tooling local.
func Generate(secret string, userID, companyID, branchID int64, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		CompanyID: companyID,
		BranchID:  branchID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims del actor.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
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
		return nil, fmt.Errorf("jwt: claims inválidos")
	}
	if claims.UserID == 0 || claims.CompanyID == 0 {
		return nil, fmt.Errorf("jwt: claims de actor incompletos")
	}
	return claims, nil
}
