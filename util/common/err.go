package common

import (
	"errors"
	"fmt"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func Combine(errs ...error) error {
	var result error
	for _, err := range errs {
		if err != nil {
			if result == nil {
				result = err
			} else {
				result = fmt.Errorf("%v; %v", result, err)
			}
		}
	}
	return result
}
