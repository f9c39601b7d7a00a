package common

import (
	"errors"
	"net/http"
)

var ErrTooManyRequests = errors.New("too many requests")

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type PagedBody struct {
	List  interface{} `json:"list"`
	Total uint64      `json:"total"`
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}
