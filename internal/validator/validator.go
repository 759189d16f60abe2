// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("holder_type", validateHolderType)
		_ = v.RegisterValidation("share_class", validateShareClass)
		_ = v.RegisterValidation("safe_type", validateSafeType)
		_ = v.RegisterValidation("safe_status", validateSafeStatus)
		_ = v.RegisterValidation("scenario_type", validateScenarioType)
		_ = v.RegisterValidation("exit_type", validateExitType)
	}
}

func validateHolderType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "founder", "investor", "employee", "advisor":
		return true
	}
	return false
}

func validateShareClass(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "common", "preferred_seed", "preferred_a", "preferred_b":
		return true
	}
	return false
}

func validateSafeType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "post_money", "pre_money", "mfn", "uncapped":
		return true
	}
	return false
}

func validateSafeStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "outstanding", "converted", "cancelled":
		return true
	}
	return false
}

func validateScenarioType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "funding_round", "exit", "option_pool_expansion", "custom":
		return true
	}
	return false
}

func validateExitType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "acquisition", "ipo", "secondary":
		return true
	}
	return false
}
