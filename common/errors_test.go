package common_test

import (
	"errors"
	"net/http"
	"shopfloor/common"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Describe("ErrBadParam", func() {
		Describe("Error", func() {
			It("should return default message if cause is nil", func() {
				err := common.ErrBadParam{}
				Expect(err.Error()).To(Equal("common.bad_param"))
			})
			It("should invoke the Error() function of cause property if cause is not nil", func() {
				err := common.ErrBadParam{Cause: common.ErrTooManyRequests}
				Expect(err.Error()).To(Equal("too many requests"))
			})
		})

		Describe("Respond", func() {
			It("should respond 400 with the cause message", func() {
				err := &common.ErrBadParam{Cause: errors.New("invalid id")}
				Expect(*err.Respond()).To(Equal(common.BizErrorDetail{
					Status: http.StatusBadRequest, Code: "common.bad_param", Message: "invalid id"}))
				Expect(errors.Unwrap(err)).To(MatchError("invalid id"))
			})
		})
	})
})
