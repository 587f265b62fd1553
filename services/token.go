package services

import (
	"encoding/json"
	"strings"

	"boutic/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserFromToken extrait l'identifiant utilisateur et le rôle du token.
func GetUserFromToken(tokenString string) (string, string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token invalide", nil)
	}

	// Décode la partie payload du token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return "", "", errors.NewAppError(errors.ErrCodeInvalidToken, "Impossible de décoder le token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return "", "", errors.NewAppError(errors.ErrCodeInvalidToken, "Impossible de parser le token", nil)
	}

	userID, okID := claimsMap["userId"].(string)
	if !okID {
		return "", "", errors.NewAppError(errors.ErrCodeInvalidToken, "Identifiant utilisateur absent du token", nil)
	}

	role, okRole := claimsMap["role"].(string)
	if !okRole {
		return "", "", errors.NewAppError(errors.ErrCodeInvalidToken, "Rôle absent du token", nil)
	}

	return userID, role, nil
}
