package services

import (
	"fmt"
	"strings"

	"github.com/multitarefa/cadastro-api/internal/models"
)

const requiredFieldMessage = "The %s field is required."

// ValidateCadastroInput checks the required text fields. Email and phone
// formats are deliberately not checked.
func ValidateCadastroInput(in models.CadastroInput) error {
	verr := models.NewValidationError()

	required := []struct {
		field string
		value string
	}{
		{"nome", in.Nome},
		{"descricao", in.Descricao},
		{"tipoConta", in.TipoConta},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.Add(r.field, fmt.Sprintf(requiredFieldMessage, r.field))
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
