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
	"os"
	"runtime"

	"github.com/zintix-labs/checkedfloat/errs"
	"gopkg.in/yaml.v3"
)

// Config 描述一次掃描任務。
//
// float32 全空間只有 2^32 個 bit patterns，可以全量驗證；
// float64 空間掃不完，改用 seeded 抽樣。兩種至少要開一種。
type Config struct {
	Workers      int    `yaml:"workers"       json:"workers"`       // 併發 worker 數；<=0 表示用 CPU 數
	Exhaustive32 bool   `yaml:"exhaustive32"  json:"exhaustive32"`  // 全量掃 float32 bit patterns
	Samples64    int    `yaml:"samples64"     json:"samples64"`     // float64 抽樣筆數；0 表示不抽
	Seed         uint64 `yaml:"seed"          json:"seed"`          // 抽樣 seed，固定 seed 可重現
	RecordPath   string `yaml:"record_path"   json:"record_path"`   // 違規紀錄檔（zstd）；空字串表示不落檔
	ShowBar      bool   `yaml:"show_bar"      json:"show_bar"`      // 進度條開關
}

// Default returns a config that exhausts float32 and samples float64.
func Default() *Config {
	return &Config{
		Workers:      0,
		Exhaustive32: true,
		Samples64:    1 << 24,
		Seed:         1,
		ShowBar:      true,
	}
}

// Load reads a yaml config file and validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read sweep config failed")
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, errs.Wrap(err, "decode sweep config failed")
	}
	if err := c.Valid(); err != nil {
		return nil, err
	}
	return c, nil
}

// Valid 執行最基本的設定檢查，並夾住 worker 範圍。
func (c *Config) Valid() error {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	// 1 <= Workers <= 256
	// for 資源管理
	c.Workers = max(1, c.Workers)
	c.Workers = min(256, c.Workers)

	if c.Samples64 < 0 {
		return errs.Fatalf("samples64 must not be negative, got: %d", c.Samples64)
	}
	if !c.Exhaustive32 && c.Samples64 == 0 {
		return errs.NewFatal("nothing to sweep: enable exhaustive32 or set samples64 > 0")
	}
	if c.Samples64 > 0 && c.Seed == 0 {
		return errs.NewFatal("seed must be nonzero when sampling float64")
	}
	return nil
}
