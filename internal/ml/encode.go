// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package ml

// LabelEncoder maps string categories to stable integer codes in first-seen
// order. Encoder state is owned by the predictor that fitted it and must be
// reused at prediction time: transforming a category the encoder never saw
// is an error, not a silent zero.
type LabelEncoder struct {
	column string
	codes  map[string]int
	order  []string
	fitted bool
}

// NewLabelEncoder creates an encoder for the named column. The column name
// only appears in error messages.
func NewLabelEncoder(column string) *LabelEncoder {
	return &LabelEncoder{
		column: column,
		codes:  map[string]int{},
	}
}

// Fit assigns codes to every distinct value in first-seen order. Calling
// Fit again resets the encoder.
func (e *LabelEncoder) Fit(values []string) {
	e.codes = make(map[string]int, len(values))
	e.order = e.order[:0]
	for _, v := range values {
		if _, ok := e.codes[v]; !ok {
			e.codes[v] = len(e.order)
			e.order = append(e.order, v)
		}
	}
	e.fitted = true
}

// FitTransform fits the encoder and returns the code for each input value.
func (e *LabelEncoder) FitTransform(values []string) []float64 {
	e.Fit(values)
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(e.codes[v])
	}
	return out
}

// Transform returns the code for a single value.
func (e *LabelEncoder) Transform(value string) (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}
	code, ok := e.codes[value]
	if !ok {
		return 0, &UnknownCategoryError{Column: e.column, Value: value}
	}
	return float64(code), nil
}

// Classes returns the fitted categories in code order.
func (e *LabelEncoder) Classes() []string {
	return e.order
}

// OneHotEncoder expands a string category into a fixed-width indicator
// vector. Unlike LabelEncoder, unknown categories at transform time produce
// an all-zeros vector (ignore semantics) rather than an error.
type OneHotEncoder struct {
	column string
	index  map[string]int
	order  []string
	fitted bool
}

// NewOneHotEncoder creates an encoder for the named column.
func NewOneHotEncoder(column string) *OneHotEncoder {
	return &OneHotEncoder{
		column: column,
		index:  map[string]int{},
	}
}

// Fit records the distinct categories in first-seen order.
func (e *OneHotEncoder) Fit(values []string) {
	e.index = make(map[string]int, len(values))
	e.order = e.order[:0]
	for _, v := range values {
		if _, ok := e.index[v]; !ok {
			e.index[v] = len(e.order)
			e.order = append(e.order, v)
		}
	}
	e.fitted = true
}

// Transform returns the indicator vector for a single value. The vector has
// one column per fitted category; an unknown value yields all zeros.
func (e *OneHotEncoder) Transform(value string) ([]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	vec := make([]float64, len(e.order))
	if i, ok := e.index[value]; ok {
		vec[i] = 1
	}
	return vec, nil
}

// Width returns the number of columns Transform produces.
func (e *OneHotEncoder) Width() int {
	return len(e.order)
}

// Categories returns the fitted categories in column order.
func (e *OneHotEncoder) Categories() []string {
	return e.order
}
