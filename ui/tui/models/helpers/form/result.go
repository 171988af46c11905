// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import "github.com/go-viper/mapstructure/v2"

// Decode turns the field values of a form, keyed by field id, into T.
func Decode[T any](values map[string]any) (T, error) {
	var data T
	err := mapstructure.Decode(values, &data)
	return data, err
}

// Encode is the inverse of Decode.
func Encode[T any](data T) (map[string]any, error) {
	values := make(map[string]any)
	if err := mapstructure.Decode(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
