// Package contacts lê exportações de agenda (CSV) para pré-preencher
// o nome e o telefone de um agendamento.
package contacts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Parse aceita linhas "name,phone". Um cabeçalho com essas colunas é
// reconhecido em qualquer ordem; linhas sem nome ou telefone são ignoradas.
func Parse(r io.Reader) ([]Contact, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	nameCol, phoneCol := 0, 1
	first := true

	var out []Contact
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("contacts: %w", err)
		}

		if first {
			first = false
			if n, p, ok := header(rec); ok {
				nameCol, phoneCol = n, p
				continue
			}
		}

		if len(rec) <= nameCol || len(rec) <= phoneCol {
			continue
		}

		c := Contact{
			Name:  strings.TrimSpace(rec[nameCol]),
			Phone: strings.TrimSpace(rec[phoneCol]),
		}
		if c.Name == "" || c.Phone == "" {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}

func header(rec []string) (nameCol, phoneCol int, ok bool) {
	nameCol, phoneCol = -1, -1
	for i, h := range rec {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "nome":
			nameCol = i
		case "phone", "telefone":
			phoneCol = i
		}
	}
	return nameCol, phoneCol, nameCol >= 0 && phoneCol >= 0
}
