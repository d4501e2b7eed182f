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
	"bufio"
	"encoding/binary"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/checkedfloat/errs"
)

// Violation 是一筆違規紀錄：哪條 law、哪個 bit pattern、哪個精度。
type Violation struct {
	Law   Law
	Bits  uint64
	Width uint8 // 32 或 64
}

// ViolationRecorder 把違規寫進 zstd 壓縮串流。
//
// 一筆紀錄是三個 uvarint：law || width || bits。
// 正常情況下違規數是零，但全空間掃描時若真的出事，violation 可能是
// 海量（一整個 exponent 區段），所以落檔走壓縮、計數留在記憶體。
// nil recorder 合法：所有方法變成 no-op，掃描端不用分支。
type ViolationRecorder struct {
	mu sync.Mutex
	zw *zstd.Encoder
	n  uint64
}

// NewViolationRecorder wraps w with a zstd stream.
func NewViolationRecorder(w io.Writer) (*ViolationRecorder, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, errs.Wrap(err, "create zstd writer failed")
	}
	return &ViolationRecorder{zw: zw}, nil
}

// Record appends one violation frame.
func (r *ViolationRecorder) Record(law Law, bits uint64, width uint8) error {
	if r == nil {
		return nil
	}
	var frame [3 * binary.MaxVarintLen64]byte
	n := binary.PutUvarint(frame[:], uint64(law))
	n += binary.PutUvarint(frame[n:], uint64(width))
	n += binary.PutUvarint(frame[n:], bits)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.zw.Write(frame[:n]); err != nil {
		return errs.Wrap(err, "write violation frame failed")
	}
	r.n++
	return nil
}

// Count returns how many violations were recorded.
func (r *ViolationRecorder) Count() uint64 {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Close flushes and closes the zstd stream (not the underlying writer).
func (r *ViolationRecorder) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.zw.Close(); err != nil {
		return errs.Wrap(err, "close zstd writer failed")
	}
	return nil
}

// DecodeViolations 讀回 Record 產生的串流（離線分析用）。
func DecodeViolations(rd io.Reader) ([]Violation, error) {
	zr, err := zstd.NewReader(rd)
	if err != nil {
		return nil, errs.Wrap(err, "create zstd reader failed")
	}
	defer zr.Close()

	br := bufio.NewReader(zr)
	var out []Violation
	for {
		law, err := binary.ReadUvarint(br)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errs.Wrap(err, "read violation law failed")
		}
		width, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, errs.Wrap(err, "read violation width failed")
		}
		bits, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, errs.Wrap(err, "read violation bits failed")
		}
		if width != 32 && width != 64 {
			return nil, errs.Warnf("corrupt violation frame: width %d", width)
		}
		out = append(out, Violation{Law: Law(law), Bits: bits, Width: uint8(width)})
	}
}

// recordBad 把 bitmask 展開成逐條 law 的紀錄。
func recordBad(vr *ViolationRecorder, bad uint32, bits uint64, width uint8) {
	if vr == nil || bad == 0 {
		return
	}
	for l := Law(0); l < lawCount; l++ {
		if bad&(1<<l) != 0 {
			// 寫檔失敗不該中斷掃描；計數器已經留住真相。
			_ = vr.Record(l, bits, width)
		}
	}
}
