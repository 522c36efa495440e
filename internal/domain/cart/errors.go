package cart

import "errors"

var ErrItemNotFound = errors.New("item not in cart")
