package helper

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"conduit-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds the helper with its validator and English
// translations registered. Request DTOs carry `validate` tags and go
// through BindJSON, so validation failures surface as per-field messages.
func NewHTTPHelper() *HTTPHelper {
	validate := validator.New()

	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

// BindJSON decodes the request body and runs the bound value through the
// configured validator.
func (u *HTTPHelper) BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return err
	}
	return u.Validate.Struct(obj)
}

// GetStatusCode maps the service error taxonomy to HTTP status codes.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidOperation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendServiceError ...
// Send a taxonomy-mapped error response to consumers.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{
		"errors": gin.H{"body": []string{err.Error()}},
	})
}

// SendBindError ...
// Send a request binding/validation failure. Translated per-field messages
// are used when a configured validator produced the error.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && u.Translator != nil {
		errorResponse := map[string][]string{}
		errorTranslation := validationErrors.Translate(u.Translator)
		for _, fieldErr := range validationErrors {
			errKey := Underscore(fieldErr.StructField())
			errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[fieldErr.Namespace()])
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errorResponse})
		return
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"errors": gin.H{"body": []string{err.Error()}},
	})
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"errors": gin.H{"body": []string{message}},
	})
}

// Underscore converts a StructField name to its snake_case request key.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
