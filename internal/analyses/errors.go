package analyses

import "errors"

var (
	ErrInvalidTaxonomy = errors.New("invalid taxonomy override")
	ErrStoreRequired   = errors.New("version store not configured")
)
