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
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

// Report 是一次掃描的結果彙整。
type Report struct {
	Label      string
	Rec        *LawRecord
	Used       time.Duration
	RecordPath string
}

func newReport(label string, rec *LawRecord, used time.Duration, recordPath string) *Report {
	return &Report{Label: label, Rec: rec, Used: used, RecordPath: recordPath}
}

// Ok reports whether the scan found zero violations.
func (r *Report) Ok() bool {
	return r.Rec.Violations == 0
}

// StdOut 輸出對齊的報表與吞吐資訊。
func (r *Report) StdOut() {
	keys, m := r.fmtBasic()
	fmt.Println(fmtTable(r.Label, keys, m))
	formatDuration(r.Used, r.Rec.Checked)
}

func formatDuration(d time.Duration, values uint64) {
	p := message.NewPrinter(lang)
	if d < 0 {
		d = -d
	}
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	vps := int(float64(values) / sec)
	if sec < 60.0 {
		p.Printf("used: %.2f seconds\nvps : %d values/sec\n", sec, vps)
		return
	}
	s := int(d.Seconds()) % 60
	m := int(d.Minutes()) % 60
	h := int(d.Hours())
	if h == 0 {
		p.Printf("used: %dm %ds\nvps : %d values/sec\n", m, s, vps)
		return
	}
	p.Printf("used: %dh:%dm:%ds\nvps : %d values/sec\n", h, m, s, vps)
}

func (r *Report) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	basic := map[string]string{
		"Scan":       r.Label,
		"Values":     p.Sprintf("%d", r.Rec.Checked),
		"Violations": p.Sprintf("%d", r.Rec.Violations),
	}
	keys := []string{"Scan", "Values", "Violations"}

	for l := Law(0); l < lawCount; l++ {
		k := l.String()
		basic[k] = p.Sprintf("%d", r.Rec.ByLaw[l])
		keys = append(keys, k)
	}

	if r.RecordPath != "" {
		basic["Record File"] = r.RecordPath
		keys = append(keys, "Record File")
	}
	return keys, basic
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	if w := runewidth.StringWidth(title); w > maxKeyLen+maxValLen+3 {
		maxValLen = w - maxKeyLen - 3
	}

	border := "+" + strings.Repeat("-", maxKeyLen+2) + "+" + strings.Repeat("-", maxValLen+2) + "+\n"
	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteString(fmt.Sprintf("| %s%s |\n", title, blank(maxKeyLen+maxValLen+3-runewidth.StringWidth(title))))
	sb.WriteString(border)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("| %s%s | %s%s |\n",
			k, blank(maxKeyLen-runewidth.StringWidth(k)),
			msg[k], blank(maxValLen-runewidth.StringWidth(msg[k]))))
	}
	sb.WriteString(border)
	return sb.String()
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
