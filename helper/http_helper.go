package helper

import (
	"log"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"postable/models"
)

// HTTPHelper owns response shaping: the success/error envelope, the
// error-kind to status-code mapping and request schema validation.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Dev        bool
}

func NewHTTPHelper(dev bool) *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	en_translations.RegisterDefaultTranslations(validate, trans)

	return &HTTPHelper{Validate: validate, Translator: trans, Dev: dev}
}

// StatusForError is the one exhaustive mapping from error kinds to
// HTTP status codes. Missing credentials are 401 while a presented but
// expired or malformed token is 403.
func (u *HTTPHelper) StatusForError(err error) int {
	appErr, ok := models.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindAuthentication:
		if appErr.Code == models.CodeTokenExpired || appErr.Code == models.CodeTokenInvalid {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	case models.KindForbidden:
		return http.StatusForbidden
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindDuplicate:
		return http.StatusConflict
	case models.KindDataStore:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the error envelope {message, code?, details?}.
// Unexpected errors are logged in full server-side and returned as a
// generic 500; their detail leaks to the caller only in development.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.StatusForError(err)

	appErr, ok := models.AsAppError(err)
	if !ok || status == http.StatusInternalServerError {
		log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		body := gin.H{"message": "internal server error"}
		if u.Dev {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	body := gin.H{"message": appErr.Message}
	if appErr.Code != "" {
		body["code"] = appErr.Code
	}
	c.JSON(status, body)
}

// SendSuccess writes {message, <key>: resource}. An empty key sends
// just the message.
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, message, key string, resource interface{}) {
	body := gin.H{"message": message}
	if key != "" {
		body[key] = resource
	}
	c.JSON(status, body)
}

// BindAndValidate decodes the JSON body into obj and runs schema
// validation on it, responding with a 400 envelope itself when either
// step fails. Returns false when the request was rejected.
func (u *HTTPHelper) BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		u.SendError(c, models.ValidationError("invalid request body"))
		return false
	}

	if err := u.Validate.Struct(obj); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendError(c, models.ValidationError("invalid request body"))
		return false
	}

	return true
}

// SendValidationError translates validator errors into a per-field
// details map on the 400 envelope.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	details := map[string][]string{}
	translations := validationErrors.Translate(u.Translator)
	for _, fieldErr := range validationErrors {
		key := Underscore(fieldErr.StructField())
		details[key] = append(details[key], translations[fieldErr.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": "invalid input",
		"code":    models.CodeInvalidInput,
		"details": details,
	})
}

// Underscore converts a StructField name like FirstName to first_name.
func Underscore(s string) string {
	var out []rune
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
