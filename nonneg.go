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

// NonNeg is a floating point number that is guaranteed not to be NaN and
// to compare >= 0.
//
// −0.0 compares equal to 0.0 under IEEE 754 and is accepted. +Inf is
// accepted too: NonNeg does not imply Finite. NonNeg guards exactly one
// property; there is deliberately no combined "FiniteNonNeg" type.
// The zero value is NonNeg(0) and is valid.
type NonNeg[F Float] struct {
	val F
}

// TryNonNeg validates v and wraps it. The check runs in every build
// configuration.
func TryNonNeg[F Float](v F) (NonNeg[F], error) {
	if !IsNonNeg(v) {
		return NonNeg[F]{}, errInvalid(VariantNonNeg, v)
	}
	return NonNeg[F]{val: v}, nil
}

// NewNonNeg wraps v, panicking with *InvalidValueError if v is NaN or
// negative. 在 release 組建（無 strict）下不檢查，直接信任呼叫端。
func NewNonNeg[F Float](v F) NonNeg[F] {
	if checksEnabled {
		r, err := TryNonNeg(v)
		if err != nil {
			panic(err)
		}
		return r
	}
	return NonNeg[F]{val: v}
}

// Val unwraps to the raw value.
func (a NonNeg[F]) Val() F {
	return a.val
}

func (a NonNeg[F]) String() string {
	return formatVal(a.val)
}

// ============================================================
// ** Arithmetic **
// ============================================================
//
// Add/Mul can still fail: Inf + (−Inf) cannot occur here, but Inf − Inf
// via Sub, 0 × Inf via Mul and 0/0 via Div all produce NaN, and Sub can
// go negative.

func (a NonNeg[F]) Add(b NonNeg[F]) NonNeg[F] { return NewNonNeg(a.val + b.val) }

// Sub fails whenever b > a: the raw result is negative.
func (a NonNeg[F]) Sub(b NonNeg[F]) NonNeg[F] { return NewNonNeg(a.val - b.val) }
func (a NonNeg[F]) Mul(b NonNeg[F]) NonNeg[F] { return NewNonNeg(a.val * b.val) }

// Div by zero yields +Inf for a nonzero numerator and succeeds (NonNeg
// tolerates +Inf); 0/0 yields NaN and panics/errs.
func (a NonNeg[F]) Div(b NonNeg[F]) NonNeg[F] { return NewNonNeg(a.val / b.val) }

// Neg necessarily fails for any nonzero value; negating ±0.0 yields a
// zero that still satisfies >= 0, so zero is the only value with an
// additive inverse inside the type.
func (a NonNeg[F]) Neg() NonNeg[F] { return NewNonNeg(-a.val) }

func (a NonNeg[F]) TryAdd(b NonNeg[F]) (NonNeg[F], error) { return TryNonNeg(a.val + b.val) }
func (a NonNeg[F]) TrySub(b NonNeg[F]) (NonNeg[F], error) { return TryNonNeg(a.val - b.val) }
func (a NonNeg[F]) TryMul(b NonNeg[F]) (NonNeg[F], error) { return TryNonNeg(a.val * b.val) }
func (a NonNeg[F]) TryDiv(b NonNeg[F]) (NonNeg[F], error) { return TryNonNeg(a.val / b.val) }
func (a NonNeg[F]) TryNeg() (NonNeg[F], error)            { return TryNonNeg(-a.val) }

// ============================================================
// ** Comparison / ordering **
// ============================================================

// Cmp returns -1, 0 or 1.
func (a NonNeg[F]) Cmp(b NonNeg[F]) int {
	switch {
	case a.val < b.val:
		return -1
	case a.val > b.val:
		return 1
	default:
		return 0
	}
}

func (a NonNeg[F]) Less(b NonNeg[F]) bool { return a.val < b.val }

func (a NonNeg[F]) Min(b NonNeg[F]) NonNeg[F] {
	if b.val < a.val {
		return b
	}
	return a
}

func (a NonNeg[F]) Max(b NonNeg[F]) NonNeg[F] {
	if b.val > a.val {
		return b
	}
	return a
}

// OrderKey maps the value onto uint64 so that key order matches Less and
// OrderKey(−0.0) == OrderKey(+0.0).
func (a NonNeg[F]) OrderKey() uint64 {
	return orderKey64(float64(a.val))
}
