package params

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Param is a named value that must not be the zero value of its type
type Param struct {
	Name  string
	Value interface{}
}

// P builds a Param
func P(name string, value interface{}) Param {
	return Param{Name: name, Value: value}
}

// MissingError is returned when one or more required parameters are unset
type MissingError struct {
	Label   string
	Missing []string
}

func (e *MissingError) Error() string {
	prefix := "[ nlu-usage ] :"
	if e.Label != "" {
		prefix = fmt.Sprintf("[ nlu-usage @ %s ] :", e.Label)
	}
	return fmt.Sprintf("%s Missing one or more required parameters: %s", prefix, strings.Join(e.Missing, ","))
}

// Check fails with a *MissingError naming every parameter whose value is
// unset: nil, an empty string, zero, or any other zero value.
func Check(label string, ps ...Param) error {
	missing := []string{}
	for _, p := range ps {
		if isMissing(p.Value) {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{
			Label:   label,
			Missing: missing,
		}
	}
	return nil
}

// CheckContext is Check for callers about to block on ctx. A done context
// is reported before any parameter is inspected.
func CheckContext(ctx context.Context, label string, ps ...Param) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return Check(label, ps...)
}

func isMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
