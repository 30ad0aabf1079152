package models

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos para datas vindas da API. O backend serializa LocalDateTime
// sem fuso ("2006-01-02T15:04:05"), mas alguns endpoints devolvem RFC3339.
var layoutsDataHora = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// DataHora encapsula time.Time aceitando os formatos de data usados pela API.
type DataHora struct {
	time.Time
}

func (d *DataHora) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range layoutsDataHora {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("formato de data não reconhecido: %q", s)
}

func (d DataHora) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}
