package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wrapper para go-playground/validator com validações brasileiras
type Validator struct {
	validate *validator.Validate
}

// New cria nova instância do validador
func New() *Validator {
	validate := validator.New()

	registerCustomValidations(validate)

	// Configurar nomes de campos usando tags JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: validate,
	}
}

// ValidateStruct valida uma struct
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// ValidateVar valida uma variável individual
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	if err := v.validate.Var(field, tag); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError formata erros de validação para serem mais legíveis
func (v *Validator) formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string

		for _, fieldError := range validationErrors {
			messages = append(messages, v.getErrorMessage(fieldError))
		}

		return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
	}

	return err
}

// getErrorMessage retorna mensagem de erro personalizada para cada tipo de validação
func (v *Validator) getErrorMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()
	tag := fieldError.Tag()
	param := fieldError.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "cpf":
		return fmt.Sprintf("%s must be a valid CPF (11 digits)", field)
	case "cep":
		return fmt.Sprintf("%s must be a valid CEP (00000-000)", field)
	case "uf":
		return fmt.Sprintf("%s must be a valid Brazilian state code", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// registerCustomValidations registra validações customizadas
func registerCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("cpf", validateCPF)
	validate.RegisterValidation("cep", validateCEP)
	validate.RegisterValidation("uf", validateUF)
}

// validateCPF valida um CPF: 11 dígitos com dígitos verificadores corretos.
// Aceita os formatos 000.000.000-00 e somente dígitos.
func validateCPF(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}

	digits := make([]int, 0, 11)
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
			// separadores permitidos
		default:
			return false
		}
	}

	if len(digits) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo mas são inválidos
	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return checkCPFDigit(digits, 9) && checkCPFDigit(digits, 10)
}

// checkCPFDigit valida o dígito verificador na posição dada
func checkCPFDigit(digits []int, position int) bool {
	sum := 0
	for i := 0; i < position; i++ {
		sum += digits[i] * (position + 1 - i)
	}

	remainder := (sum * 10) % 11
	if remainder == 10 {
		remainder = 0
	}

	return remainder == digits[position]
}

// validateCEP valida um CEP nos formatos 00000-000 ou 00000000
func validateCEP(fl validator.FieldLevel) bool {
	cep := fl.Field().String()
	if cep == "" {
		return true
	}

	cep = strings.ReplaceAll(cep, "-", "")
	if len(cep) != 8 {
		return false
	}

	for _, r := range cep {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// brazilianStates siglas de UF válidas
var brazilianStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// validateUF valida a sigla de estado brasileiro
func validateUF(fl validator.FieldLevel) bool {
	uf := fl.Field().String()
	if uf == "" {
		return true
	}

	return brazilianStates[strings.ToUpper(uf)]
}
