package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UserFromRequest extracts the user id from the Authorization bearer
// token's sub claim. The token is parsed unverified; signature checks
// happen upstream at the gateway.
func UserFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	jwtString := strings.TrimPrefix(authHeader, "Bearer ")
	if jwtString == "" {
		return "", fmt.Errorf("invalid Authorization header")
	}

	token, _, err := jwt.NewParser().ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("missing sub in token")
	}

	return sub, nil
}
