// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package checkedfloat

import "fmt"

// InvalidValueError is the only error kind this package produces.
//
// The Try* surface returns it; the panicking surface panics with the same
// value, so a recover() handler can inspect it with errors.As. Value is
// widened to float64 so one error type serves both precisions.
type InvalidValueError struct {
	Variant Variant // which invariant was violated
	Value   float64 // the offending raw value
}

// Error 實作 error 介面並回傳格式化後的錯誤訊息。
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("checkedfloat: %g is not a valid %s value (%s)", e.Value, e.Variant, e.reason())
}

func (e *InvalidValueError) reason() string {
	switch e.Variant {
	case VariantReal:
		return "encountered NaN unexpectedly"
	case VariantFinite:
		return "encountered infinity or NaN unexpectedly"
	case VariantNonNeg:
		return "encountered a negative or NaN unexpectedly"
	default:
		return "unknown variant"
	}
}

// errInvalid builds the error for a rejected raw value.
func errInvalid[F Float](vr Variant, v F) error {
	return &InvalidValueError{Variant: vr, Value: float64(v)}
}
