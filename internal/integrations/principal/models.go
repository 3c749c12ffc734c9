package principal

import "github.com/golang-jwt/jwt/v5"

// Claims содержимое токена сотрудника
type Claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}
