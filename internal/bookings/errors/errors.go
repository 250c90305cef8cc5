package errors

import "errors"

var ErrDuplicate = errors.New("booking already exists for this class and email")
