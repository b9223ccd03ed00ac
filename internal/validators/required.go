package validators

import (
	"strings"

	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
)

// Required devolve o valor sem espaços nas pontas, ou ValidationError
// para o campo quando ficar vazio.
func Required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", httperr.ErrValidation(field)
	}
	return v, nil
}
