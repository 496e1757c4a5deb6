package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownField = errors.New("unknown field")

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func unknownField(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", field, err)
	}
	return n, nil
}
