package errors

import (
	"errors"
	"fmt"
)

// ErrorCode définit un code d'erreur applicatif
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Storage errors
	ErrCodeStoreError    ErrorCode = "STORE_ERROR"
	ErrCodeStoreNotFound ErrorCode = "STORE_NOT_FOUND"
	ErrCodeStoreParse    ErrorCode = "STORE_PARSE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeInvalidDiscount  ErrorCode = "INVALID_DISCOUNT"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeRateLimited      ErrorCode = "RATE_LIMITED"
)

// AppError définit une erreur applicative
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError crée une nouvelle AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError vérifie si l'erreur est une AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extrait l'AppError d'une erreur
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Flash sale errors
	ErrFlashSaleNotFound = errors.New("vente flash introuvable")

	// Catalog errors
	ErrProductNotFound = errors.New("produit introuvable")

	// Validation errors
	ErrInvalidInput    = errors.New("données invalides")
	ErrMissingRequired = errors.New("champ obligatoire manquant")
	ErrInvalidFormat   = errors.New("format invalide")
)
