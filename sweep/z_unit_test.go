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

package sweep

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestLawCheckBoundaryPatterns32(t *testing.T) {
	// 邊界 bit patterns：零、負零、±Inf、NaN 各式 payload、
	// subnormal 兩端、最大有限值。全部 law 都必須成立。
	patterns := []uint32{
		0x00000000, // +0
		0x80000000, // −0
		0x7f800000, // +Inf
		0xff800000, // −Inf
		0x7fc00000, // quiet NaN
		0x7f800001, // signaling NaN
		0xffc00001, // negative NaN with payload
		0x00000001, // smallest subnormal
		0x007fffff, // largest subnormal
		0x00800000, // smallest normal
		0x7f7fffff, // MaxFloat32
		0xff7fffff, // −MaxFloat32
		0x3f800000, // 1.0
		0xbf800000, // −1.0
	}
	for _, b := range patterns {
		v := math.Float32frombits(b)
		if bad := lawCheck(v); bad != 0 {
			t.Fatalf("law violation mask %#x at bits %#08x", bad, b)
		}
	}
}

func TestLawCheckExhaustiveRangeAcrossInfinity(t *testing.T) {
	// 掃過 MaxFloat32 → +Inf → NaN 的交界區段，這裡是 predicate
	// 行為翻轉的地方，也是最容易寫錯的地方。
	for b := uint32(0x7f7fff00); b <= 0x7f800100; b++ {
		v := math.Float32frombits(b)
		if bad := lawCheck(v); bad != 0 {
			t.Fatalf("law violation mask %#x at bits %#08x", bad, b)
		}
	}
	// 同一段的負半邊。
	for b := uint32(0xff7fff00); b <= 0xff800100; b++ {
		v := math.Float32frombits(b)
		if bad := lawCheck(v); bad != 0 {
			t.Fatalf("law violation mask %#x at bits %#08x", bad, b)
		}
	}
}

func TestLawCheckBoundaryPatterns64(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1),
		math.Inf(1), math.Inf(-1),
		math.NaN(), -math.NaN(),
		scalar.NaNWith(1), scalar.NaNWith(0xdeadbeef),
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		math.MaxFloat64, -math.MaxFloat64,
		1.0, -1.0, math.Pi,
	}
	for _, v := range values {
		if bad := lawCheck(v); bad != 0 {
			t.Fatalf("law violation mask %#x at %g (bits %#016x)", bad, v, math.Float64bits(v))
		}
	}
}

func TestMergeLawRecords(t *testing.T) {
	a := &LawRecord{Checked: 10, Violations: 2}
	a.ByLaw[LawSubset] = 2
	b := &LawRecord{Checked: 5, Violations: 1}
	b.ByLaw[LawClosureDiv] = 1

	m := MergeLawRecords([]*LawRecord{a, nil, b})
	if m.Checked != 15 || m.Violations != 3 {
		t.Fatalf("merge totals wrong: %+v", m)
	}
	if m.ByLaw[LawSubset] != 2 || m.ByLaw[LawClosureDiv] != 1 {
		t.Fatalf("merge per-law wrong: %+v", m.ByLaw)
	}
}

func TestConfigValid(t *testing.T) {
	c := Default()
	if err := c.Valid(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Workers < 1 || c.Workers > 256 {
		t.Fatalf("workers not clamped: %d", c.Workers)
	}

	bad := &Config{Exhaustive32: false, Samples64: 0}
	if err := bad.Valid(); err == nil {
		t.Fatalf("empty sweep config must be rejected")
	}

	neg := &Config{Exhaustive32: true, Samples64: -1}
	if err := neg.Valid(); err == nil {
		t.Fatalf("negative samples64 must be rejected")
	}

	noseed := &Config{Samples64: 10, Seed: 0}
	if err := noseed.Valid(); err == nil {
		t.Fatalf("zero seed with sampling must be rejected")
	}
}

func TestViolationRecorderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	vr, err := NewViolationRecorder(&buf)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	want := []Violation{
		{Law: LawCtorReal, Bits: 0x7fc00000, Width: 32},
		{Law: LawClosureDiv, Bits: math.Float64bits(math.Pi), Width: 64},
		{Law: LawSubset, Bits: 0, Width: 64},
	}
	for _, v := range want {
		if err := vr.Record(v.Law, v.Bits, v.Width); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if vr.Count() != uint64(len(want)) {
		t.Fatalf("count got %d want %d", vr.Count(), len(want))
	}
	if err := vr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := DecodeViolations(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d records want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d got %+v want %+v", i, got[i], want[i])
		}
	}

	// nil recorder 是合法的 no-op。
	var nilRec *ViolationRecorder
	if err := nilRec.Record(LawSubset, 1, 64); err != nil {
		t.Fatalf("nil recorder must be a no-op, got %v", err)
	}
	if nilRec.Count() != 0 || nilRec.Close() != nil {
		t.Fatalf("nil recorder must be a no-op")
	}
}

func TestSweeperSample64Clean(t *testing.T) {
	cfg := &Config{
		Workers:   2,
		Samples64: 1 << 12,
		Seed:      7,
		ShowBar:   false,
	}
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new sweeper: %v", err)
	}
	reports, err := s.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports want 1", len(reports))
	}
	r := reports[0]
	if !r.Ok() {
		t.Fatalf("sample sweep found violations: %+v", r.Rec)
	}
	if r.Rec.Checked != uint64(cfg.Samples64) {
		t.Fatalf("checked %d want %d", r.Rec.Checked, cfg.Samples64)
	}
}

func TestReportTable(t *testing.T) {
	rec := &LawRecord{Checked: 4096, Violations: 0}
	r := newReport("float64 sample", rec, 0, "")
	keys, m := r.fmtBasic()
	out := fmtTable(r.Label, keys, m)
	for _, k := range keys {
		if !strings.Contains(out, k) {
			t.Fatalf("table missing key %q:\n%s", k, out)
		}
	}
	if !r.Ok() {
		t.Fatalf("zero-violation report must be Ok")
	}
}
