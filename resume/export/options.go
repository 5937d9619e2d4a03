// Package export prepares the optimizations object consumed by the resume
// formatter. It produces data only; rendering happens elsewhere.
package export

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Presentation defaults.
const (
	DefaultFormatStyle = "professional"
	DefaultFontSize    = "medium"
	DefaultSpacing     = "standard"
	DefaultTopN        = 10
	MaxTopN            = 50
)

var ErrInvalidOptions = errors.New("invalid presentation options")

// PresentationOptions are the user's formatting choices. Unset fields take the
// package defaults.
type PresentationOptions struct {
	FormatStyle     string `json:"format_style" validate:"omitempty,oneof=professional classic modern"`
	FontSize        string `json:"font_size" validate:"omitempty,oneof=small medium large"`
	Spacing         string `json:"spacing" validate:"omitempty,oneof=compact standard relaxed"`
	IncludeKeywords *bool  `json:"include_keywords"`
	OptimizeATS     *bool  `json:"optimize_ats"`
	TopN            *int   `json:"top_n" validate:"omitempty,min=0,max=50"`
}

var validate = validator.New()

// Validate checks enumerated fields and the top_n range.
func (o PresentationOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// WithDefaults fills unset fields.
func (o PresentationOptions) WithDefaults() PresentationOptions {
	if o.FormatStyle == "" {
		o.FormatStyle = DefaultFormatStyle
	}
	if o.FontSize == "" {
		o.FontSize = DefaultFontSize
	}
	if o.Spacing == "" {
		o.Spacing = DefaultSpacing
	}
	if o.IncludeKeywords == nil {
		o.IncludeKeywords = boolPtr(true)
	}
	if o.OptimizeATS == nil {
		o.OptimizeATS = boolPtr(true)
	}
	if o.TopN == nil {
		n := DefaultTopN
		o.TopN = &n
	}
	return o
}

func boolPtr(v bool) *bool {
	return &v
}
