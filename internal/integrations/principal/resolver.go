package principal

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// HeaderUserID заголовок, который выставляет доверенный gateway
	HeaderUserID = "X-User-ID"

	bearerPrefix = "Bearer "
)

// Resolver определяет ID сотрудника по учетным данным запроса
type Resolver interface {
	Resolve(r *http.Request) (int64, error)
}

// JWTResolver проверяет HS256 Bearer токен и роль сотрудника
type JWTResolver struct {
	secret []byte
	role   string
}

// NewJWTResolver создает резолвер для подписи secret и требуемой роли
func NewJWTResolver(secret, role string) (*JWTResolver, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty jwt secret", ErrInvalidConfig)
	}
	return &JWTResolver{secret: []byte(secret), role: role}, nil
}

// Resolve достает сотрудника из заголовка Authorization
func (r *JWTResolver) Resolve(req *http.Request) (int64, error) {
	header := req.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return 0, fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), claims,
		func(t *jwt.Token) (interface{}, error) {
			return r.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: invalid token: %v", ErrUnauthorized, err)
	}

	if r.role != "" && claims.Role != r.role {
		return 0, fmt.Errorf("%w: role %q is not allowed", ErrUnauthorized, claims.Role)
	}

	return parseWorkerID(claims.Sub)
}

// HeaderResolver доверяет X-User-ID от gateway
type HeaderResolver struct{}

// NewHeaderResolver создает резолвер по заголовку X-User-ID
func NewHeaderResolver() *HeaderResolver {
	return &HeaderResolver{}
}

// Resolve достает сотрудника из X-User-ID
func (HeaderResolver) Resolve(req *http.Request) (int64, error) {
	return parseWorkerID(req.Header.Get(HeaderUserID))
}

// IssueToken подписывает токен сотрудника (используется cmd/tokengen и в тестах)
func IssueToken(secret string, workerID int64, role string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: empty jwt secret", ErrInvalidConfig)
	}

	claims := Claims{
		Sub:  strconv.FormatInt(workerID, 10),
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseWorkerID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: missing worker id", ErrUnauthorized)
	}

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid worker id: %v", ErrUnauthorized, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: non-positive worker id", ErrUnauthorized)
	}
	return id, nil
}
