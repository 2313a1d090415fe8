package daal

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision waehlt den Gleitkommatyp der nativen Berechnung.
type Precision int

const (
	DoublePrecision Precision = iota
	SinglePrecision
)

// Precisions listet alle gueltigen Precision-Werte.
var Precisions = []Precision{DoublePrecision, SinglePrecision}

// Valid prueft ob p einer der beiden Codes ist.
func (p Precision) Valid() bool {
	return p == DoublePrecision || p == SinglePrecision
}

func (p Precision) String() string {
	switch p {
	case DoublePrecision:
		return "double"
	case SinglePrecision:
		return "single"
	default:
		return "precision(" + strconv.Itoa(int(p)) + ")"
	}
}

// PrecisionOf bildet den Go-Gleitkommatyp auf die Precision ab.
func PrecisionOf[T float32 | float64]() Precision {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return SinglePrecision
	}
	return DoublePrecision
}

// ParsePrecision akzeptiert "double"/"float64"/"0" und "single"/"float"/"float32"/"1".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double", "float64", "0":
		return DoublePrecision, nil
	case "single", "float", "float32", "1":
		return SinglePrecision, nil
	}
	return 0, fmt.Errorf("daal: parse precision %q: %w", s, ErrTypeUnsupported)
}

func (p Precision) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("daal: marshal %s: %w", p, ErrTypeUnsupported)
	}
	return []byte(p.String()), nil
}

func (p *Precision) UnmarshalText(b []byte) error {
	v, err := ParsePrecision(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
