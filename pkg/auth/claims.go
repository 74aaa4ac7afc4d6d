package auth

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin is the only role minted today; the field exists so tokens stay forward compatible.
const RoleAdmin = "admin"

// AdminTokenPayload captures the data available when minting a back-office JWT.
type AdminTokenPayload struct {
	Email string
	Role  string
	JTI   string
}

// AdminTokenClaims represents the typed JWT issued to the back-office client.
type AdminTokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
