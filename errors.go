package gqlfetch

import (
	"errors"
	"fmt"
)

// ErrNoData reports a well-formed response envelope that carried no data
// document (the field was absent or JSON null). The protocol treats this as
// failure: nothing is cached and nothing is broadcast. Match with errors.Is.
var ErrNoData = errors.New("no data in response")

func noDataErr(op string) error {
	return fmt.Errorf("gqlfetch: %s: %w", op, ErrNoData)
}
