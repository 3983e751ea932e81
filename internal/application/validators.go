package application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/RenHec/HRS/internal/domain"
)

// Validator contiene funciones de validación de datos
type Validator struct{}

// ValidateNit valida el número de identificación tributaria. "CF" es el nit
// genérico de consumidor final y siempre es válido.
func (v *Validator) ValidateNit(nit string) error {
	if nit == "" {
		return fmt.Errorf("el nit es requerido")
	}

	if strings.EqualFold(nit, domain.NitConsumidorFinal) {
		return nil
	}

	// Limpiar guiones
	cleanNit := strings.ReplaceAll(nit, "-", "")

	nitRegex := regexp.MustCompile(`^\d{5,15}$`)

	if !nitRegex.MatchString(cleanNit) {
		return fmt.Errorf("el nit '%s' debe tener entre 5 y 15 dígitos", nit)
	}

	return nil
}

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}

	// Regex básico para email
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}

	return nil
}

// ValidateName valida que un nombre no esté vacío y tenga formato válido
func (v *Validator) ValidateName(name, fieldName string) error {
	if name == "" {
		return fmt.Errorf("el %s es requerido", fieldName)
	}

	name = strings.TrimSpace(name)

	if len(name) < 2 {
		return fmt.Errorf("el %s debe tener al menos 2 caracteres", fieldName)
	}

	if len(name) > 100 {
		return fmt.Errorf("el %s no puede tener más de 100 caracteres", fieldName)
	}

	return nil
}
