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

// Package sweep 對 checkedfloat 做 bit-pattern 等級的驗證：
// float32 全空間逐一檢查、float64 抽樣檢查，確認每一條 law 成立。
package sweep

import (
	"math"

	cf "github.com/zintix-labs/checkedfloat"
)

// Law 是掃描時逐值驗證的性質。
type Law uint8

const (
	// LawCtorReal : TryReal 成功 ⇔ IsReal，且成功時 bit pattern 原樣保留。
	LawCtorReal Law = iota
	// LawCtorFinite : 同上，對 Finite。
	LawCtorFinite
	// LawCtorNonNeg : 同上，對 NonNeg。
	LawCtorNonNeg
	// LawSubset : IsFinite ⇒ IsReal 且 IsNonNeg ⇒ IsReal。
	LawSubset
	// LawClosureAdd : 對合法的 x，x.TryAdd(x) 報錯 ⇔ raw 結果違反 predicate。
	LawClosureAdd
	// LawClosureMul : 同上，對乘法。
	LawClosureMul
	// LawClosureDiv : 同上，對除法（x/x 覆蓋 0/0、Inf/Inf 兩個 NaN 生成點）。
	LawClosureDiv

	lawCount
)

func (l Law) String() string {
	switch l {
	case LawCtorReal:
		return "ctor/real"
	case LawCtorFinite:
		return "ctor/finite"
	case LawCtorNonNeg:
		return "ctor/nonneg"
	case LawSubset:
		return "subset"
	case LawClosureAdd:
		return "closure/add"
	case LawClosureMul:
		return "closure/mul"
	case LawClosureDiv:
		return "closure/div"
	default:
		return "unknown"
	}
}

// LawRecord 是單一 worker 的計數器；掃完後用 MergeLawRecords 合併。
type LawRecord struct {
	Checked    uint64
	Violations uint64
	ByLaw      [lawCount]uint64
}

func (r *LawRecord) mark(bad uint32) {
	r.Violations++
	for l := Law(0); l < lawCount; l++ {
		if bad&(1<<l) != 0 {
			r.ByLaw[l]++
		}
	}
}

// MergeLawRecords 合併多個 worker 的計數。
func MergeLawRecords(rs []*LawRecord) *LawRecord {
	m := new(LawRecord)
	for _, r := range rs {
		if r == nil {
			continue
		}
		m.Checked += r.Checked
		m.Violations += r.Violations
		for i := range r.ByLaw {
			m.ByLaw[i] += r.ByLaw[i]
		}
	}
	return m
}

// lawCheck 對單一 raw 值驗證所有 law，回傳違規的 bitmask（0 表示全過）。
func lawCheck[F cf.Float](v F) uint32 {
	var bad uint32

	isR := cf.IsReal(v)
	isF := cf.IsFinite(v)
	isN := cf.IsNonNeg(v)

	if (isF || isN) && !isR {
		bad |= 1 << LawSubset
	}

	r, errR := cf.TryReal(v)
	if (errR == nil) != isR {
		bad |= 1 << LawCtorReal
	}
	if errR == nil && !sameBits(r.Val(), v) {
		bad |= 1 << LawCtorReal
	}

	f, errF := cf.TryFinite(v)
	if (errF == nil) != isF {
		bad |= 1 << LawCtorFinite
	}
	if errF == nil && !sameBits(f.Val(), v) {
		bad |= 1 << LawCtorFinite
	}

	n, errN := cf.TryNonNeg(v)
	if (errN == nil) != isN {
		bad |= 1 << LawCtorNonNeg
	}
	if errN == nil && !sameBits(n.Val(), v) {
		bad |= 1 << LawCtorNonNeg
	}

	// 閉包抽查：x ∘ x。錯誤回報必須與對應 predicate 對 raw 結果的判定一致。
	if errR == nil {
		if _, err := r.TryAdd(r); (err == nil) != cf.IsReal(v+v) {
			bad |= 1 << LawClosureAdd
		}
		if _, err := r.TryMul(r); (err == nil) != cf.IsReal(v*v) {
			bad |= 1 << LawClosureMul
		}
		if _, err := r.TryDiv(r); (err == nil) != cf.IsReal(v/v) {
			bad |= 1 << LawClosureDiv
		}
	}
	if errF == nil {
		if _, err := f.TryAdd(f); (err == nil) != cf.IsFinite(v+v) {
			bad |= 1 << LawClosureAdd
		}
		if _, err := f.TryMul(f); (err == nil) != cf.IsFinite(v*v) {
			bad |= 1 << LawClosureMul
		}
		if _, err := f.TryDiv(f); (err == nil) != cf.IsFinite(v/v) {
			bad |= 1 << LawClosureDiv
		}
	}
	if errN == nil {
		if _, err := n.TryAdd(n); (err == nil) != cf.IsNonNeg(v+v) {
			bad |= 1 << LawClosureAdd
		}
		if _, err := n.TryMul(n); (err == nil) != cf.IsNonNeg(v*v) {
			bad |= 1 << LawClosureMul
		}
		if _, err := n.TryDiv(n); (err == nil) != cf.IsNonNeg(v/v) {
			bad |= 1 << LawClosureDiv
		}
	}

	return bad
}

// sameBits 比對 bit pattern（經 float64 加寬；加寬在非 NaN 值上是單射）。
func sameBits[F cf.Float](a, b F) bool {
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}
