// bb84sim.go simulates batches of BB84 key exchanges for each entry in a
// list of qubit counts and outputs a CSV of per-run statistics, e.g. how many
// positions survived sifting and whether the two parties extracted the same
// raw key. Aggregate summaries and optional full transcripts go to the log.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/NavMohan-24/Quantum-Key-Distribution/bb84"
	"github.com/NavMohan-24/Quantum-Key-Distribution/bb84/bitmap"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

var (
	qubits      = flag.IntSlice("qubits", []int{256}, "The qubit counts to exchange, one experiment per entry.")
	runs        = flag.Int("runs", 16, "The number of exchanges to simulate per qubit count.")
	seed        = flag.Int64("seed", 0, "The base seed for run randomness. Zero picks one from the clock.")
	parallelism = flag.Int("parallelism", runtime.NumCPU(), "The maximum number of exchanges running concurrently.")
	transcripts = flag.Bool("transcripts", false, "Log the full bit and basis strings of every run.")
	verbose     = flag.Bool("verbose", false, "Log at debug level.")
)

var columns = []string{"Qubits", "Run", "Seed", "Matched", "MatchRate", "KeyBits", "KeysAgree"}

// An Experiment packages together the result of a single simulated exchange
// for easy formatting.
type Experiment struct {
	Qubits    int
	Run       int
	Seed      int64
	Matched   int
	MatchRate float64
	KeyBits   int
	KeysAgree bool

	transcript bb84.Transcript
}

func main() {
	flag.Parse()
	log := newLogger(*verbose)

	base := *seed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	log.Info().Int64("seed", base).Int("runs", *runs).Ints("qubits", *qubits).
		Msg("starting experiments")

	fmt.Println(header())
	tmpl := template.Must(template.New("line").Parse(lineTmpl()))
	for _, q := range *qubits {
		exps, err := experiment(q, *runs, base, *parallelism, log)
		if err != nil {
			log.Fatal().Err(err).Int("qubits", q).Msg("experiment failed")
		}
		for _, exp := range exps {
			if *transcripts {
				logTranscript(log, exp)
			}
			if err := tmpl.Execute(os.Stdout, exp); err != nil {
				log.Fatal().Err(err).Msg("BUG: could not fill in line template")
			}
		}
		summarize(log, q, exps)
		base += int64(*runs)
	}
}

// experiment simulates runs independent exchanges of q qubits, seeding run i
// with baseSeed+i so the whole batch is reproducible from one number.
func experiment(q, runs int, baseSeed int64, parallelism int, log zerolog.Logger) ([]Experiment, error) {
	exps := make([]Experiment, runs)
	g := new(errgroup.Group)
	g.SetLimit(parallelism)
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			runSeed := baseSeed + int64(i)
			p, err := bb84.New(bb84.Opts{
				Qubits: q,
				Rand:   rand.New(rand.NewSource(runSeed)),
				Logger: log,
			})
			if err != nil {
				return fmt.Errorf("configuring run %d: %w", i, err)
			}
			tr, err := p.Run()
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			stats, err := tr.Stats()
			if err != nil {
				return fmt.Errorf("summarizing run %d: %w", i, err)
			}
			key, err := tr.Key()
			if err != nil {
				return fmt.Errorf("sifting run %d: %w", i, err)
			}
			aliceKey, err := tr.AliceKey()
			if err != nil {
				return fmt.Errorf("sifting run %d: %w", i, err)
			}
			exps[i] = Experiment{
				Qubits:     q,
				Run:        i,
				Seed:       runSeed,
				Matched:    stats.Matched,
				MatchRate:  stats.MatchRate,
				KeyBits:    key.Size(),
				KeysAgree:  bitmap.Equal(key, aliceKey),
				transcript: tr,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return exps, nil
}

func summarize(log zerolog.Logger, q int, exps []Experiment) {
	rates := make([]float64, len(exps))
	keyBits := make([]float64, len(exps))
	for i, e := range exps {
		rates[i] = e.MatchRate
		keyBits[i] = float64(e.KeyBits)
	}
	log.Info().
		Int("qubits", q).
		Int("runs", len(exps)).
		Float64("match_rate_mean", stat.Mean(rates, nil)).
		Float64("match_rate_stddev", stat.StdDev(rates, nil)).
		Float64("key_bits_mean", stat.Mean(keyBits, nil)).
		Float64("key_bits_stddev", stat.StdDev(keyBits, nil)).
		Msg("experiment summary")
}

func logTranscript(log zerolog.Logger, exp Experiment) {
	log.Info().
		Int("qubits", exp.Qubits).
		Int("run", exp.Run).
		Str("alice_bits", exp.transcript.AliceBits.String()).
		Str("alice_bases", exp.transcript.AliceBases.String()).
		Str("bob_bases", exp.transcript.BobBases.String()).
		Str("bob_bits", exp.transcript.BobBits.String()).
		Msg("transcript")
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func header() string {
	return strings.Join(columns, ", ")
}

func lineTmpl() string {
	var els []string
	for _, c := range columns {
		els = append(els, "{{."+c+"}}")
	}
	return strings.Join(els, ", ") + "\n"
}
