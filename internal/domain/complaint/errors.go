package complaint

import "errors"

var ErrComplaintNotFound = errors.New("complaint not found")
