package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"consorcio-simulator/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateContract range-checks a contract before it reaches the calculator.
func ValidateContract(input domain.ContractInput) error {
	if err := validate.Struct(input); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidateScenario checks the contract and the contemplation range of a
// scenario comparison.
func ValidateScenario(input domain.ScenarioInput) error {
	if err := ValidateContract(input.Contract); err != nil {
		return err
	}
	if input.MinContemplationMonth < 0 {
		return &ValidationError{Err: errors.New("mês mínimo de contemplação inválido")}
	}
	if input.MinContemplationMonth > input.MaxContemplationMonth {
		return &ValidationError{Err: errors.New("mês mínimo de contemplação maior que o máximo")}
	}
	if input.MaxContemplationMonth > input.Contract.TotalMonths {
		return &ValidationError{Err: fmt.Errorf("mês máximo de contemplação excede o prazo de %d meses", input.Contract.TotalMonths)}
	}
	if input.MaxContemplationMonth-input.MinContemplationMonth > MaxScenarioRangeMonths {
		return &ValidationError{Err: fmt.Errorf("intervalo de contemplação excede o máximo de %d meses", MaxScenarioRangeMonths)}
	}
	return nil
}
