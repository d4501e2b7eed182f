package main

import (
	"crypto/rand"
	"encoding/binary"
	"flag"
	"log"
	"os"

	"github.com/zintix-labs/checkedfloat/logger"
	"github.com/zintix-labs/checkedfloat/sweep"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var args = new(cliArgs)

type cliArgs struct {
	configPath string
	workers    int
	samples    int
	seed       uint64
	record     string
	no32       bool
	nobar      bool
	prod       bool
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.StringVar(&args.configPath, "config", "", "yaml config path; flags set on the command line override it")
	flag.IntVar(&args.workers, "worker", 0, "number of workers (0 = NumCPU)")
	flag.IntVar(&args.samples, "samples", 1<<24, "float64 sample count (0 = skip the float64 scan)")
	flag.Uint64Var(&args.seed, "seed", 0, "uint64 seed for the float64 sampler (0 = random)")
	flag.StringVar(&args.record, "record", "", "violation record file (zstd); empty = counters only")
	flag.BoolVar(&args.no32, "no32", false, "skip the exhaustive float32 sweep")
	flag.BoolVar(&args.nobar, "nobar", false, "hide the progress bar")
	flag.BoolVar(&args.prod, "prod", false, "json logs on stdout instead of dev text logs")

	flag.Parse()

	// given seed illeagel -> random seed
	if args.seed == 0 {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			log.Fatal(err)
		}
		args.seed = binary.LittleEndian.Uint64(b[:]) | 1 // 保證非零
	}
}

// 這裡組出最終設定並執行掃描
func execute() {
	cfg := loadConfig()

	mode := logger.ModeDev
	if args.prod {
		mode = logger.ModeProd
	}
	slogger, ah := logger.NewAsync(8192, mode)
	defer ah.Close()

	s, err := sweep.New(cfg, slogger)
	if err != nil {
		log.Fatal(err)
	}

	green := "\033[1;32m"
	reset := "\033[0m"
	p := message.NewPrinter(language.English)
	p.Printf("%s[SWEEP] [WORKERS:%d] [FLOAT32:%v] [FLOAT64 SAMPLES:%d] [SEED:%d]%s\n",
		green, cfg.Workers, cfg.Exhaustive32, cfg.Samples64, cfg.Seed, reset)

	reports, err := s.Run()
	if err != nil {
		log.Fatal(err)
	}

	clean := true
	for _, r := range reports {
		r.StdOut()
		if !r.Ok() {
			clean = false
		}
	}
	if !clean {
		os.Exit(1)
	}
}

// loadConfig 先讀檔（若有），再讓命令列上真的有打的 flag 蓋過去。
func loadConfig() *sweep.Config {
	cfg := sweep.Default()
	if args.configPath != "" {
		c, err := sweep.Load(args.configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["worker"] {
		cfg.Workers = args.workers
	}
	if set["samples"] {
		cfg.Samples64 = args.samples
	}
	if set["seed"] || cfg.Seed == 0 {
		cfg.Seed = args.seed
	}
	if set["record"] {
		cfg.RecordPath = args.record
	}
	if set["no32"] {
		cfg.Exhaustive32 = !args.no32
	}
	if set["nobar"] {
		cfg.ShowBar = !args.nobar
	}

	if err := cfg.Valid(); err != nil {
		log.Fatal(err)
	}
	return cfg
}
