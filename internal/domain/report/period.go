// Package report contiene las reglas de dominio de los reportes de caja.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// PeriodType granularidad del cierre de caja.
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// Period período de cierre: un día exacto (2024-05-17), un mes (2024-05) o un año (2024).
type Period struct {
	Type  PeriodType
	Value string
}

var layouts = map[PeriodType]string{
	PeriodDay:   "2006-01-02",
	PeriodMonth: "2006-01",
	PeriodYear:  "2006",
}

// ParsePeriod valida tipo y valor. Devuelve domain.ErrInvalidInput si el tipo no es
// day|month|year, si el valor está vacío o si no respeta el formato del tipo.
func ParsePeriod(periodType, value string) (Period, error) {
	t := PeriodType(strings.ToLower(strings.TrimSpace(periodType)))
	layout, ok := layouts[t]
	if !ok {
		return Period{}, fmt.Errorf("%w: tipo de período %q no reconocido", domain.ErrInvalidInput, periodType)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return Period{}, fmt.Errorf("%w: valor de período vacío", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(layout, value); err != nil {
		return Period{}, fmt.Errorf("%w: valor de período %q no coincide con %s", domain.ErrInvalidInput, value, layout)
	}
	return Period{Type: t, Value: value}, nil
}

// Contains indica si el instante cae dentro del período (comparación textual por granularidad).
func (p Period) Contains(at time.Time) bool {
	layout, ok := layouts[p.Type]
	if !ok {
		return false
	}
	return at.Format(layout) == p.Value
}

// String representación legible, p.ej. "month 2024-05".
func (p Period) String() string {
	return string(p.Type) + " " + p.Value
}
