package dto

import (
	"errors"
	"fmt"
	"strings"

	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/entity"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that knows the deal-type tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("deal_type", oneOf(constant.DealTypes))
	_ = v.RegisterValidation("deal_structure", oneOf(constant.DealStructures))
	return v
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// ValidateGeneration checks req and the fields kind cannot do without.
func ValidateGeneration(v *validator.Validate, kind entity.GenerationKind, req GenerationRequest) error {
	if err := v.Struct(req); err != nil {
		return err
	}
	switch kind {
	case entity.GenerationScript:
		if req.DealType == "" {
			return errors.New("deal type is required")
		}
	case entity.GenerationLOI:
		if req.Structure == "" {
			return errors.New("deal structure is required")
		}
	}
	return nil
}

// ValidationMessage flattens validator errors into one readable line.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "deal_type":
			parts = append(parts, fmt.Sprintf("deal type must be one of: %s", strings.Join(constant.DealTypes, ", ")))
		case "deal_structure":
			parts = append(parts, fmt.Sprintf("deal structure must be one of: %s", strings.Join(constant.DealStructures, ", ")))
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", strings.ToLower(fe.Field()), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(parts, "; ")
}
