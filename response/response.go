package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response définit la structure de réponse
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// ResponseTotal est une réponse accompagnée d'un total
type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

// Success renvoie une réponse de succès
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Succès",
		Data: data,
	})
}

// SuccessWithTotal renvoie une réponse de succès avec le total
func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Succès",
		Total: total,
		Data:  data,
	})
}

// Error renvoie une réponse d'erreur
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError renvoie une erreur serveur, texte brut de l'erreur inclus
func ServerError(c *gin.Context, err error) {
	mess := "Erreur serveur"
	if err != nil {
		mess = "Erreur serveur: " + err.Error()
	}
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: mess,
	})
}

// Unauthorized renvoie une réponse non authentifiée
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Non authentifié",
	})
}

// Forbidden renvoie une réponse accès refusé
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Accès refusé",
	})
}

// NotFound renvoie une réponse introuvable
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Introuvable"
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError renvoie une erreur de validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest renvoie une erreur bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// TooManyRequests renvoie une réponse de dépassement de quota (429)
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Response{
		Code: 0,
		Mess: "Trop de requêtes, veuillez réessayer plus tard",
	})
}
