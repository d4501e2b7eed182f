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

// Package checkedfloat provides floating point wrapper types whose names
// guarantee a numeric property:
//
//   - Real[F]   : never NaN (±Inf allowed)
//   - Finite[F] : never NaN, never ±Inf
//   - NonNeg[F] : never NaN, always >= 0 (−0.0 accepted; +Inf allowed)
//
// Every value flows through a checked path: the constructors, every
// arithmetic operation and every conversion re-validate the raw result
// before wrapping it. Downstream code can therefore drop the scattered
// NaN/Inf/sign checks and rely on the type alone.
//
// Two failure channels exist and are never mixed in one call:
//
//   - New*/Add/Sub/Mul/Div/Neg and the conversion methods panic with an
//     *InvalidValueError when the result violates the invariant. Whether
//     that check actually runs is a build-time policy, see below.
//   - Try-prefixed counterparts return the *InvalidValueError instead and
//     run their check unconditionally in every build configuration. This
//     is the only universally safe surface.
//
// Build-time policy（編譯期決定，不是 runtime 參數）:
//
//   - default build          : panicking API checks enabled
//   - -tags checkedfloat_release : panicking API checks compiled out
//     （信任呼叫端；誤用時非法值會安靜進入系統，這是契約不是 bug）
//   - -tags checkedfloat_strict  : forces checks on, overrides release
//
// The wrappers are immutable value types with no shared state; copies may
// be used freely across goroutines.
package checkedfloat

import "math"

// Float is the precision parameter of every wrapper type.
// Defined here instead of importing x/exp/constraints to keep the module
// surface self-contained.
type Float interface {
	~float32 | ~float64
}

// Variant names which invariant a wrapper type guards.
// It travels inside InvalidValueError so callers can log which contract
// was violated.
type Variant uint8

const (
	VariantReal Variant = iota
	VariantFinite
	VariantNonNeg
)

func (v Variant) String() string {
	switch v {
	case VariantReal:
		return "Real"
	case VariantFinite:
		return "Finite"
	case VariantNonNeg:
		return "NonNeg"
	default:
		return "Unknown"
	}
}

// ============================================================
// ** Invariant predicates **
// ============================================================
//
// Pure, total, never fail. These are the single source of truth for the
// three invariants; constructors and operations delegate here.

// IsReal reports whether v satisfies the Real invariant: not NaN.
// NaN 是唯一不等於自身的浮點值，所以 v == v 就是 !IsNaN。
func IsReal[F Float](v F) bool {
	return v == v
}

// IsFinite reports whether v satisfies the Finite invariant:
// not NaN and not ±Inf.
func IsFinite[F Float](v F) bool {
	return v == v && !math.IsInf(float64(v), 0)
}

// IsNonNeg reports whether v satisfies the NonNeg invariant:
// not NaN and v >= 0. Under IEEE 754 −0.0 compares equal to 0.0,
// so −0.0 is accepted. +Inf is accepted: NonNeg does not imply Finite.
func IsNonNeg[F Float](v F) bool {
	return v == v && v >= 0
}

// ChecksEnabled reports whether the panicking API validates its results
// in this build. It is false only when the module was compiled with
// -tags checkedfloat_release and without -tags checkedfloat_strict.
// The Try* surface is unaffected either way.
func ChecksEnabled() bool {
	return checksEnabled
}
