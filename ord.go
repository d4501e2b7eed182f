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

import (
	"math"
	"strconv"
)

// orderKey64 maps a non-NaN float64 onto uint64 so that unsigned integer
// order matches numeric order and both zeros map to the same key.
//
//   - positive values: set the sign bit（正數 bit pattern 本身已遞增，
//     推上上半區即可）
//   - −0.0: canonicalize to the +0.0 key
//   - other negatives: flip every bit（反轉方向並落到下半區）
//
// float32 callers widen first; widening preserves order and the sign of
// zero. Behavior for NaN is unspecified — the wrappers can never hold one.
func orderKey64(v float64) uint64 {
	const msb = 1 << 63
	b := math.Float64bits(v)
	if b&msb == 0 {
		return b | msb
	}
	if b<<1 == 0 {
		return msb
	}
	return ^b
}

// formatVal renders v with the shortest representation that round-trips
// at its precision. Named types defined on float32 fall back to 64-bit
// width, which is still exact, just longer.
func formatVal[F Float](v F) string {
	if _, ok := any(v).(float32); ok {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
