// Package validation checks user-supplied configuration at the pipeline
// boundary, combining struct-tag rules with the semantic checks the tags
// cannot express.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/mapping"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/partition"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidatePartitionConfig validates partitioning parameters before a run
func ValidatePartitionConfig(cfg *partition.Config) error {
	if cfg == nil {
		return errors.New("partition config cannot be nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	if cfg.Imbalance < 0 {
		return fmt.Errorf("Imbalance: must not be negative, got %v", cfg.Imbalance)
	}
	return nil
}

// ValidateMappingParams validates mapper parameters before a run
func ValidateMappingParams(params *mapping.Params) error {
	if params == nil {
		return errors.New("mapping params cannot be nil")
	}
	if err := validate.Struct(params); err != nil {
		return formatValidationError(err)
	}

	// Semantic checks the struct tags cannot express.
	if err := params.Check(); err != nil {
		return err
	}
	return nil
}

// formatValidationError converts validator errors to user-friendly messages
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: failed validation rule '%s'", field, tag)
		}
	}

	return err
}
