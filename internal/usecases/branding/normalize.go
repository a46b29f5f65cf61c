package branding

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
)

const (
	maxTextLength = 100
	minGrowthRate = -100
	maxGrowthRate = 1000
	lastMonthSlot = 11
)

// NormalizeBrandInput converte o corpo JSON solto em BrandInput. Números
// enviados como string são aceitos; tipos incompatíveis viram erro de campo.
func NormalizeBrandInput(raw map[string]any) (*domain.BrandInput, error) {
	if raw == nil {
		return nil, invalidRecord("Corpo da requisição ausente", nil)
	}

	var input domain.BrandInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &input,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		fields := []FieldError{{Field: "body", Message: err.Error()}}

		var decodeErr *mapstructure.Error
		if errors.As(err, &decodeErr) {
			fields = fields[:0]
			for _, msg := range decodeErr.Errors {
				fields = append(fields, FieldError{Field: fieldFromMessage(msg), Message: msg})
			}
		}

		return nil, invalidRecord("Campos com tipo inválido", fields)
	}

	return &input, nil
}

// fieldFromMessage extrai o nome do campo das mensagens do mapstructure, que
// seguem o formato "'campo' expected ..." ou "cannot parse 'campo' ...".
func fieldFromMessage(msg string) string {
	start := strings.Index(msg, "'")
	if start < 0 {
		return "body"
	}
	end := strings.Index(msg[start+1:], "'")
	if end < 0 {
		return "body"
	}
	return msg[start+1 : start+1+end]
}

// ValidateBrandCreate valida um corpo de criação e aplica os valores padrão.
func ValidateBrandCreate(input *domain.BrandInput) (*domain.Brand, error) {
	fields := validateInput(input, true)
	if len(fields) > 0 {
		return nil, invalidRecord("Dados da marca inválidos", fields)
	}

	brand := &domain.Brand{}
	applyInput(brand, input)

	return brand, nil
}

// ValidateBrandUpdate valida uma edição parcial e aplica sobre a marca atual.
func ValidateBrandUpdate(brand *domain.Brand, input *domain.BrandInput) error {
	fields := validateInput(input, false)
	if len(fields) > 0 {
		return invalidRecord("Dados da marca inválidos", fields)
	}

	applyInput(brand, input)

	return nil
}

func validateInput(input *domain.BrandInput, create bool) []FieldError {
	var fields []FieldError
	add := func(field, format string, args ...any) {
		fields = append(fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	checkText := func(field string, value *string) {
		if value == nil {
			if create {
				add(field, "campo obrigatório")
			}
			return
		}
		length := utf8.RuneCountInString(strings.TrimSpace(*value))
		if length == 0 || length > maxTextLength {
			add(field, "deve ter entre 1 e %d caracteres", maxTextLength)
		}
	}

	checkText("name", input.Name)
	checkText("category", input.Category)

	if v := input.StartingSales; v != nil {
		if !isFinite(*v) || *v < 0 {
			add("startingSales", "deve ser um número maior ou igual a zero")
		}
	} else if create {
		add("startingSales", "campo obrigatório")
	}

	if v := input.MonthlyGrowthRate; v != nil {
		if !isFinite(*v) || *v < minGrowthRate || *v > maxGrowthRate {
			add("monthlyGrowthRate", "deve estar entre %d e %d", minGrowthRate, maxGrowthRate)
		}
	} else if create {
		add("monthlyGrowthRate", "campo obrigatório")
	}

	if v := input.StartingMonth; v != nil {
		if !isFinite(*v) || *v != math.Trunc(*v) || *v < 0 || *v > lastMonthSlot {
			add("startingMonth", "deve ser um inteiro entre 0 e %d", lastMonthSlot)
		}
	}

	if v := input.LaunchPlanFee; v != nil {
		if !isFinite(*v) || *v < 0 {
			add("launchPlanFee", "deve ser um número maior ou igual a zero")
		}
	}

	return fields
}

func applyInput(brand *domain.Brand, input *domain.BrandInput) {
	if input.Name != nil {
		brand.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		brand.Category = strings.TrimSpace(*input.Category)
	}
	if input.StartingSales != nil {
		brand.StartingSales = *input.StartingSales
	}
	if input.MonthlyGrowthRate != nil {
		brand.MonthlyGrowthRate = *input.MonthlyGrowthRate
	}
	if input.StartingMonth != nil {
		brand.StartingMonth = int(*input.StartingMonth)
	}
	if input.HasLaunchPlan != nil {
		brand.HasLaunchPlan = *input.HasLaunchPlan
	}
	if input.LaunchPlanFee != nil {
		brand.LaunchPlanFee = *input.LaunchPlanFee
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidRecord(details string, fields []FieldError) *BrandError {
	err := NewBrandError(ErrInvalidBrandRecord, apiErrors.ErrInvalidBrandRecord, details)
	err.Fields = fields
	return err
}
