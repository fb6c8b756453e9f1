// Package cli implements the ur-random command: it draws values from a seeded Generator
// and prints one result per line.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	random "github.com/chriscauley/ur-random"
)

// Operations supported by Run.
const (
	OpFloat   = "float"
	OpInt     = "int"
	OpRaw     = "raw"
	OpChoice  = "choice"
	OpShuffle = "shuffle"
	OpSeeds   = "seeds"
)

// Config holds the command configuration. Environment variables provide defaults, flags override them.
type Config struct {
	Seed  string   `env:"UR_RANDOM_SEED"`
	Op    string   `env:"UR_RANDOM_OP" envDefault:"float"`
	Count int      `env:"UR_RANDOM_COUNT" envDefault:"10"`
	Min   int      `env:"UR_RANDOM_MIN" envDefault:"0"`
	Max   int      `env:"UR_RANDOM_MAX"`
	Items []string `env:"UR_RANDOM_ITEMS" envSeparator:","`
	// MaxSet reports whether Max was given; without it -op int draws from [Min, 2147483647).
	MaxSet bool
}

// ParseEnv loads configuration from environ, or from the process environment when environ is nil.
func ParseEnv(target any, environ map[string]string) error {
	var err error
	if environ == nil {
		err = env.Parse(target)
	} else {
		err = env.ParseWithOptions(target, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses environment defaults and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg, environ); err != nil {
		return Config{}, err
	}
	items := strings.Join(cfg.Items, ",")

	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "integer or text seed (empty = random)")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation: float, int, raw, choice, shuffle, seeds")
	fs.IntVar(&cfg.Count, "n", cfg.Count, "number of draws")
	fs.IntVar(&cfg.Min, "min", cfg.Min, "lower bound for -op int")
	fs.IntVar(&cfg.Max, "max", cfg.Max, "exclusive upper bound for -op int (default 2147483647)")
	fs.StringVar(&items, "items", items, "comma separated items for -op choice and -op shuffle")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.MaxSet = envSet(environ, "UR_RANDOM_MAX")
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max" {
			cfg.MaxSet = true
		}
	})
	cfg.Items = splitItems(items)
	return cfg, nil
}

func envSet(environ map[string]string, key string) bool {
	if environ == nil {
		_, ok := os.LookupEnv(key)
		return ok
	}
	_, ok := environ[key]
	return ok
}

func splitItems(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// seedValue keeps integer seeds numeric so "42" and 42 seed the same stream.
func seedValue(s string) any {
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

// Run executes the command, writing results to out and diagnostics to logger.
func Run(cfg Config, out io.Writer, logger *log.Logger) error {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := random.New(seedValue(cfg.Seed))
	if cfg.Seed == "" {
		logger.Printf("no seed given, using seed %d", g.Seed())
	}

	max := random.Modulus
	if cfg.MaxSet {
		max = cfg.Max
	}

	for i := 0; i < cfg.Count; i++ {
		var line string
		switch cfg.Op {
		case OpFloat:
			line = strconv.FormatFloat(g.Float64(), 'g', -1, 64)
		case OpInt:
			line = strconv.Itoa(g.IntRange(cfg.Min, max))
		case OpRaw:
			line = strconv.FormatInt(int64(g.Raw()), 10)
		case OpChoice:
			v, err := random.Choice(g, cfg.Items)
			if err != nil {
				return fmt.Errorf("choice: %w", err)
			}
			line = v
		case OpShuffle:
			line = strings.Join(random.Shuffle(g, cfg.Items), ",")
		case OpSeeds:
			line = strconv.FormatInt(g.NextSeed(), 10)
		default:
			return fmt.Errorf("unknown op %q", cfg.Op)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}
