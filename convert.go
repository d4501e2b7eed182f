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

// Conversions between the three variants. All of them are explicit and all
// of them route through the target's checked constructor — even the
// widenings that can never fail. 轉換點必須留在呼叫端看得到的地方，
// 這樣 invariant 的稽核面才不會被隱式轉換吃掉。

// ============================================================
// ** From Real **
// ============================================================

// Finite narrows to Finite, panicking per policy if the value is ±Inf.
func (a Real[F]) Finite() Finite[F] { return NewFinite(a.val) }

// TryFinite narrows to Finite, erring if the value is ±Inf.
func (a Real[F]) TryFinite() (Finite[F], error) { return TryFinite(a.val) }

// NonNeg narrows to NonNeg, panicking per policy if the value is negative.
func (a Real[F]) NonNeg() NonNeg[F] { return NewNonNeg(a.val) }

// TryNonNeg narrows to NonNeg, erring if the value is negative.
func (a Real[F]) TryNonNeg() (NonNeg[F], error) { return TryNonNeg(a.val) }

// ============================================================
// ** From Finite **
// ============================================================

// Real widens to Real. Always succeeds: Finite's domain is a subset of
// Real's. Still explicit, still checked.
func (a Finite[F]) Real() Real[F] { return NewReal(a.val) }

// TryReal widens to Real; provided for callers that treat every
// conversion uniformly through the fallible surface.
func (a Finite[F]) TryReal() (Real[F], error) { return TryReal(a.val) }

// NonNeg converts to NonNeg, panicking per policy if the value is
// negative.
func (a Finite[F]) NonNeg() NonNeg[F] { return NewNonNeg(a.val) }

// TryNonNeg converts to NonNeg, erring if the value is negative.
func (a Finite[F]) TryNonNeg() (NonNeg[F], error) { return TryNonNeg(a.val) }

// ============================================================
// ** From NonNeg **
// ============================================================

// Real widens to Real. Always succeeds.
func (a NonNeg[F]) Real() Real[F] { return NewReal(a.val) }

// TryReal widens to Real through the fallible surface.
func (a NonNeg[F]) TryReal() (Real[F], error) { return TryReal(a.val) }

// Finite converts to Finite, panicking per policy if the value is +Inf.
// NonNeg 不蘊含 Finite，+Inf 在這裡才會被擋下來。
func (a NonNeg[F]) Finite() Finite[F] { return NewFinite(a.val) }

// TryFinite converts to Finite, erring if the value is +Inf.
func (a NonNeg[F]) TryFinite() (Finite[F], error) { return TryFinite(a.val) }
