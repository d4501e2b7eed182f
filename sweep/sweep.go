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
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/checkedfloat/errs"
)

// Sweeper 依 Config 執行掃描。
//
// 併發語意：每個 worker 有自己的 LawRecord（避免熱路徑上鎖），
// 只有違規落檔共用 recorder（有 mutex；正常情況下永遠不會碰到）。
type Sweeper struct {
	cfg *Config
	log *slog.Logger
}

// New builds a Sweeper. log may be nil; a silent logger is used then.
func New(cfg *Config, log *slog.Logger) (*Sweeper, error) {
	if cfg == nil {
		return nil, errs.NewFatal("sweep config is required")
	}
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Sweeper{cfg: cfg, log: log}, nil
}

// Run 依設定執行所有掃描，回傳每個掃描各自的報表。
func (s *Sweeper) Run() ([]*Report, error) {
	var vr *ViolationRecorder
	if s.cfg.RecordPath != "" {
		f, err := os.Create(s.cfg.RecordPath)
		if err != nil {
			return nil, errs.Wrap(err, "create violation record file failed")
		}
		defer f.Close()
		vr, err = NewViolationRecorder(f)
		if err != nil {
			return nil, err
		}
		defer vr.Close()
	}

	var reports []*Report
	if s.cfg.Exhaustive32 {
		reports = append(reports, s.sweep32(vr))
	}
	if s.cfg.Samples64 > 0 {
		reports = append(reports, s.sample64(vr))
	}
	for _, r := range reports {
		if r.Rec.Violations > 0 {
			s.log.Error("law violations found", "scan", r.Label, "violations", r.Rec.Violations)
		} else {
			s.log.Info("scan clean", "scan", r.Label, "checked", r.Rec.Checked)
		}
	}
	return reports, nil
}

// sweep32 全量掃 2^32 個 float32 bit patterns。
func (s *Sweeper) sweep32(vr *ViolationRecorder) *Report {
	const total = uint64(1) << 32
	workers := s.cfg.Workers

	bar := pb.StartNew(int(total))
	if !s.cfg.ShowBar {
		bar.SetWriter(io.Discard)
	}

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	recs := make([]*LawRecord, workers)

	span := total / uint64(workers)
	for i := 0; i < workers; i++ {
		recs[i] = new(LawRecord)
		lo := uint64(i) * span
		hi := lo + span
		if i == workers-1 {
			hi = total // 餘數交給最後一個 worker
		}
		go sweep32Worker(wg, lo, hi, recs[i], vr, bar)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	return newReport("float32 exhaustive", MergeLawRecords(recs), used, s.cfg.RecordPath)
}

func sweep32Worker(wg *sync.WaitGroup, lo, hi uint64, rec *LawRecord, vr *ViolationRecorder, bar *pb.ProgressBar) {
	defer wg.Done()

	// 進度條不能每個值都戳，分段回報。
	const flush = 1 << 16
	pending := 0
	for b := lo; b < hi; b++ {
		v := math.Float32frombits(uint32(b))
		bad := lawCheck(v)
		rec.Checked++
		if bad != 0 {
			rec.mark(bad)
			recordBad(vr, bad, b, 32)
		}
		pending++
		if pending == flush {
			bar.Add(flush)
			pending = 0
		}
	}
	bar.Add(pending)
}

// sample64 以固定 seed 抽樣 float64 bit patterns（全空間掃不完）。
func (s *Sweeper) sample64(vr *ViolationRecorder) *Report {
	workers := s.cfg.Workers
	samples := s.cfg.Samples64

	bar := pb.StartNew(samples)
	if !s.cfg.ShowBar {
		bar.SetWriter(io.Discard)
	}

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	recs := make([]*LawRecord, workers)

	span := samples / workers
	for i := 0; i < workers; i++ {
		recs[i] = new(LawRecord)
		n := span
		if i == workers-1 {
			n = samples - span*(workers-1)
		}
		// 每個 worker 一條獨立、可重現的 PCG 流。
		rng := rand.New(rand.NewPCG(s.cfg.Seed, uint64(i)+1))
		go sample64Worker(wg, n, rng, recs[i], vr, bar)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	return newReport("float64 sample", MergeLawRecords(recs), used, s.cfg.RecordPath)
}

func sample64Worker(wg *sync.WaitGroup, n int, rng *rand.Rand, rec *LawRecord, vr *ViolationRecorder, bar *pb.ProgressBar) {
	defer wg.Done()

	const flush = 1 << 12
	pending := 0
	for i := 0; i < n; i++ {
		bits := rng.Uint64()
		v := math.Float64frombits(bits)
		bad := lawCheck(v)
		rec.Checked++
		if bad != 0 {
			rec.mark(bad)
			recordBad(vr, bad, bits, 64)
		}
		pending++
		if pending == flush {
			bar.Add(flush)
			pending = 0
		}
	}
	bar.Add(pending)
}
