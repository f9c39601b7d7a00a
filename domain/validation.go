package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var workOrderValidator = newWorkOrderValidator()

func newWorkOrderValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("workorderstatus", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateWorkOrder collects human readable problems of order. It is advisory: the store never
// calls it, callers run it before committing a create or an update.
func ValidateWorkOrder(order *WorkOrder) []string {
	messages := []string{}
	if order == nil {
		return append(messages, "work order is required")
	}

	if err := workOrderValidator.Struct(order); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return append(messages, err.Error())
		}
		for _, fe := range fieldErrors {
			messages = append(messages, fieldMessage(fe, order))
		}
	}

	if order.StartDate.IsZero() {
		messages = append(messages, "start date is required")
	}
	if order.EndDate.IsZero() {
		messages = append(messages, "end date is required")
	}
	if !order.StartDate.IsZero() && !order.EndDate.IsZero() && order.StartDate.After(order.EndDate) {
		messages = append(messages, "start date must not be after end date")
	}
	if order.Produced > order.Target {
		messages = append(messages, fmt.Sprintf("produced quantity %d exceeds target %d", order.Produced, order.Target))
	}
	return messages
}

func fieldMessage(fe validator.FieldError, order *WorkOrder) string {
	switch fe.StructField() {
	case "ID":
		return "id is required"
	case "Site":
		return "site is required"
	case "WorkCenter":
		return "work center is required"
	case "Status":
		if fe.Tag() == "required" {
			return "status is required"
		}
		return fmt.Sprintf("status '%s' is unknown", order.Status)
	}
	return fe.Error()
}
