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

// Real is a floating point number that is guaranteed not to be NaN.
// ±Inf is allowed.
//
// The zero value is Real(0) and is valid. Real is comparable with ==
// (well-defined: NaN can never be stored) and safe to use as a map key,
// with −0.0 and +0.0 colliding as IEEE equality dictates.
type Real[F Float] struct {
	val F
}

// TryReal validates v and wraps it. The check runs in every build
// configuration.
func TryReal[F Float](v F) (Real[F], error) {
	if !IsReal(v) {
		return Real[F]{}, errInvalid(VariantReal, v)
	}
	return Real[F]{val: v}, nil
}

// NewReal wraps v, panicking with *InvalidValueError if v is NaN.
// 在 release 組建（無 strict）下不檢查，直接信任呼叫端。
func NewReal[F Float](v F) Real[F] {
	if checksEnabled {
		r, err := TryReal(v)
		if err != nil {
			panic(err)
		}
		return r
	}
	return Real[F]{val: v}
}

// Val unwraps to the raw value. No check needed: the invariant already
// holds for every live wrapper.
func (a Real[F]) Val() F {
	return a.val
}

func (a Real[F]) String() string {
	return formatVal(a.val)
}

// ============================================================
// ** Arithmetic **
// ============================================================
//
// Both operands are already proven non-NaN, so only the result needs
// re-validation. Inf−Inf, 0×Inf, 0/0 and Inf/Inf are the NaN producers.

func (a Real[F]) Add(b Real[F]) Real[F] { return NewReal(a.val + b.val) }
func (a Real[F]) Sub(b Real[F]) Real[F] { return NewReal(a.val - b.val) }
func (a Real[F]) Mul(b Real[F]) Real[F] { return NewReal(a.val * b.val) }

// Div follows native IEEE semantics first and checks the result after:
// x/0 for x ≠ 0 yields ±Inf and succeeds (Real tolerates infinity),
// 0/0 yields NaN and panics/errs.
func (a Real[F]) Div(b Real[F]) Real[F] { return NewReal(a.val / b.val) }
func (a Real[F]) Neg() Real[F]          { return NewReal(-a.val) }

func (a Real[F]) TryAdd(b Real[F]) (Real[F], error) { return TryReal(a.val + b.val) }
func (a Real[F]) TrySub(b Real[F]) (Real[F], error) { return TryReal(a.val - b.val) }
func (a Real[F]) TryMul(b Real[F]) (Real[F], error) { return TryReal(a.val * b.val) }
func (a Real[F]) TryDiv(b Real[F]) (Real[F], error) { return TryReal(a.val / b.val) }
func (a Real[F]) TryNeg() (Real[F], error)          { return TryReal(-a.val) }

// ============================================================
// ** Comparison / ordering **
// ============================================================
//
// Total because NaN is ruled out. Delegates to the native comparison.

// Cmp returns -1, 0 or 1.
func (a Real[F]) Cmp(b Real[F]) int {
	switch {
	case a.val < b.val:
		return -1
	case a.val > b.val:
		return 1
	default:
		return 0
	}
}

func (a Real[F]) Less(b Real[F]) bool { return a.val < b.val }

// Min/Max need no recheck: both inputs already satisfy the invariant.
func (a Real[F]) Min(b Real[F]) Real[F] {
	if b.val < a.val {
		return b
	}
	return a
}

func (a Real[F]) Max(b Real[F]) Real[F] {
	if b.val > a.val {
		return b
	}
	return a
}

// OrderKey maps the value onto uint64 so that key order matches Less and
// OrderKey(−0.0) == OrderKey(+0.0). Useful as a radix/sort key.
func (a Real[F]) OrderKey() uint64 {
	return orderKey64(float64(a.val))
}
