package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"hospital-bed-booking/internal/middleware"
	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/repository"
	"hospital-bed-booking/internal/service"
	"hospital-bed-booking/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func init() {
	// report validation failures under the form/json field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondError maps service and repository errors onto HTTP responses
func respondError(c *gin.Context, log *logrus.Logger, err error, notFound string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ValidationErrorResponse(c, verr.Fields)
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, notFound)
	case errors.Is(err, repository.ErrDuplicateEmail):
		utils.ErrorResponse(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidRefreshToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, repository.ErrCapacityExhausted):
		utils.ErrorResponse(c, http.StatusConflict, "No beds available of that type.")
	case errors.Is(err, repository.ErrInvalidDoctor):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor.")
	case errors.Is(err, repository.ErrDoctorUnavailable):
		utils.ErrorResponse(c, http.StatusConflict, "Doctor unavailable.")
	default:
		_ = c.Error(err)
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Something went wrong, please try again later")
	}
}

// respondBindError reports binding failures per field when the validator rejected them
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	utils.ValidationErrorResponse(c, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

// parseID reads a numeric path parameter
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// actorFrom builds the explicit current user from the auth middleware's context values
func actorFrom(c *gin.Context) service.Actor {
	role, _ := c.Get(middleware.ContextRole)
	r, _ := role.(models.Role)
	return service.Actor{UserID: c.GetUint(middleware.ContextUserID), Role: r}
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func bedTypeOptions() []option {
	opts := make([]option, 0, len(models.BedTypes))
	for _, bt := range models.BedTypes {
		opts = append(opts, option{Value: string(bt), Label: bt.Label()})
	}
	return opts
}

func utoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
