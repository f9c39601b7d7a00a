package bizerror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"shopfloor/common"
	"shopfloor/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func ErrorHandling() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handle(c)
		c.Next()
	}
}

func handle(c *gin.Context) {
	if ret := recover(); ret != nil {
		err, ok := ret.(error)
		if !ok {
			err = errors.New(fmt.Sprintf("%s", ret))
		}
		HandleError(c, err)
	} else {
		if err := c.Errors.Last(); err != nil {
			HandleError(c, err)
		}
	}
}

func HandleError(c *gin.Context, err error) {
	genericErr := err
	var ginErr *gin.Error
	if errors.As(err, &ginErr) {
		genericErr = ginErr.Err
	}

	status, body := translate(genericErr)
	if status >= http.StatusInternalServerError {
		logrus.WithField("path", c.Request.URL.Path).Error(err)
	} else {
		logrus.WithField("path", c.Request.URL.Path).Debug(err)
	}
	c.JSON(status, body)
	c.Abort()
}

func translate(err error) (int, *common.ErrorBody) {
	if bizErr, ok := err.(common.BizError); ok {
		respond := bizErr.Respond()
		return respond.Status, &common.ErrorBody{Code: respond.Code, Message: respond.Message, Data: respond.Data}
	}

	// bad request: io.EOF (no body).
	if errors.Is(err, io.EOF) {
		return http.StatusBadRequest, &common.ErrorBody{Code: "bad_request.body_not_found", Message: "body not found"}
	}
	// bad request: json syntax error
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return http.StatusBadRequest, &common.ErrorBody{Code: "bad_request.invalid_body_format", Message: "invalid body format", Data: syntaxErr.Error()}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return http.StatusBadRequest, &common.ErrorBody{Code: "bad_request.invalid_body_format", Message: "invalid body format", Data: typeErr.Error()}
	}
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, &common.ErrorBody{Code: "bad_request.validation_failed", Message: "validation failed", Data: validationErr.Error()}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, &common.ErrorBody{Code: "common.record_not_found", Message: "record not found"}
	case errors.Is(err, domain.ErrWorkOrderExisted):
		return http.StatusConflict, &common.ErrorBody{Code: "work_order.existed", Message: "work order existed"}
	case errors.Is(err, domain.ErrInvalidTarget):
		return http.StatusUnprocessableEntity, &common.ErrorBody{Code: "work_order.invalid_target", Message: "target must be greater than zero"}
	case errors.Is(err, domain.ErrUnknownStatus):
		return http.StatusBadRequest, &common.ErrorBody{Code: "work_order.unknown_status", Message: "unknown status"}
	case errors.Is(err, common.ErrTooManyRequests):
		return http.StatusTooManyRequests, &common.ErrorBody{Code: "common.too_many_requests", Message: "too many requests"}
	}

	return http.StatusInternalServerError, &common.ErrorBody{Code: "common.internal_server_error", Message: err.Error()}
}
