package table

import (
	"errors"
	"fmt"
)

var ErrNotNumeric = errors.New("value is not numeric")

// Pair is a named value as produced by the engine's output assembly.
type Pair struct {
	Name  string
	Value any
}

// FromValues lays collected values out as a table. Series become columns and
// must agree on length; numeric scalars are repeated on every row. With no
// series at all, scalars form a single row.
func FromValues(pairs ...Pair) (*Table, error) {
	rows := -1
	for _, p := range pairs {
		if !IsSeries(p.Value) {
			if _, err := AsNumber(p.Value); err != nil {
				return nil, fmt.Errorf("value %q of type %T cannot be written as a column: %w", p.Name, p.Value, err)
			}
			continue
		}
		series, _ := AsSeries(p.Value)
		if rows >= 0 && len(series) != rows {
			return nil, fmt.Errorf("%w: %q has %d rows, expected %d", ErrLengthMismatch, p.Name, len(series), rows)
		}
		rows = len(series)
	}
	if rows < 0 {
		rows = 1
	}

	t := &Table{}
	for _, p := range pairs {
		var series []float64
		if IsSeries(p.Value) {
			series, _ = AsSeries(p.Value)
		} else {
			v, _ := AsNumber(p.Value)
			series = make([]float64, rows)
			for i := range series {
				series[i] = v
			}
		}
		if err := t.Append(Column{Name: p.Name, Values: series}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// IsSeries reports whether v is one of the slice types AsSeries accepts.
func IsSeries(v any) bool {
	switch v.(type) {
	case []float64, []int, []int64:
		return true
	}
	return false
}

// AsSeries converts a column value to []float64. A []float64 is returned
// as is, without copying.
func AsSeries(v any) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		return s, nil
	case []int:
		out := make([]float64, len(s))
		for i, x := range s {
			out[i] = float64(x)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(s))
		for i, x := range s {
			out[i] = float64(x)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: expected a series, got %T", ErrNotNumeric, v)
}

// AsNumber converts a scalar value to float64.
func AsNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: expected a number, got %T", ErrNotNumeric, v)
}
