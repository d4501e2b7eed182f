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

// Finite is a floating point number that is guaranteed to be neither NaN
// nor ±Inf.
//
// Finite's domain is a strict subset of Real's, but the types stay
// distinct: conversion is explicit (see convert.go), never automatic.
// The zero value is Finite(0) and is valid.
type Finite[F Float] struct {
	val F
}

// TryFinite validates v and wraps it. The check runs in every build
// configuration.
func TryFinite[F Float](v F) (Finite[F], error) {
	if !IsFinite(v) {
		return Finite[F]{}, errInvalid(VariantFinite, v)
	}
	return Finite[F]{val: v}, nil
}

// NewFinite wraps v, panicking with *InvalidValueError if v is NaN or
// ±Inf. 在 release 組建（無 strict）下不檢查，直接信任呼叫端。
func NewFinite[F Float](v F) Finite[F] {
	if checksEnabled {
		r, err := TryFinite(v)
		if err != nil {
			panic(err)
		}
		return r
	}
	return Finite[F]{val: v}
}

// Val unwraps to the raw value.
func (a Finite[F]) Val() F {
	return a.val
}

func (a Finite[F]) String() string {
	return formatVal(a.val)
}

// ============================================================
// ** Arithmetic **
// ============================================================
//
// Finite is not closed under any of these: overflow to ±Inf fails the
// post-check. 兩個合法的 Finite 相加也可能溢位，這正是 post-check 存在的理由。

func (a Finite[F]) Add(b Finite[F]) Finite[F] { return NewFinite(a.val + b.val) }
func (a Finite[F]) Sub(b Finite[F]) Finite[F] { return NewFinite(a.val - b.val) }
func (a Finite[F]) Mul(b Finite[F]) Finite[F] { return NewFinite(a.val * b.val) }

// Div by zero yields ±Inf (or NaN for 0/0) under IEEE semantics and is
// always rejected by the post-check: infinity violates Finite.
func (a Finite[F]) Div(b Finite[F]) Finite[F] { return NewFinite(a.val / b.val) }

// Neg never fails for finite values but still routes through the checked
// constructor so the lifecycle contract stays uniform.
func (a Finite[F]) Neg() Finite[F] { return NewFinite(-a.val) }

func (a Finite[F]) TryAdd(b Finite[F]) (Finite[F], error) { return TryFinite(a.val + b.val) }
func (a Finite[F]) TrySub(b Finite[F]) (Finite[F], error) { return TryFinite(a.val - b.val) }
func (a Finite[F]) TryMul(b Finite[F]) (Finite[F], error) { return TryFinite(a.val * b.val) }
func (a Finite[F]) TryDiv(b Finite[F]) (Finite[F], error) { return TryFinite(a.val / b.val) }
func (a Finite[F]) TryNeg() (Finite[F], error)            { return TryFinite(-a.val) }

// ============================================================
// ** Comparison / ordering **
// ============================================================

// Cmp returns -1, 0 or 1.
func (a Finite[F]) Cmp(b Finite[F]) int {
	switch {
	case a.val < b.val:
		return -1
	case a.val > b.val:
		return 1
	default:
		return 0
	}
}

func (a Finite[F]) Less(b Finite[F]) bool { return a.val < b.val }

func (a Finite[F]) Min(b Finite[F]) Finite[F] {
	if b.val < a.val {
		return b
	}
	return a
}

func (a Finite[F]) Max(b Finite[F]) Finite[F] {
	if b.val > a.val {
		return b
	}
	return a
}

// OrderKey maps the value onto uint64 so that key order matches Less and
// OrderKey(−0.0) == OrderKey(+0.0).
func (a Finite[F]) OrderKey() uint64 {
	return orderKey64(float64(a.val))
}
