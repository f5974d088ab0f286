package wishlist

import "errors"

var ErrInvalidProduct = errors.New("invalid product id")
