// Package stream emits one random word per seed path for statistical testing.
//
// Labels are gray-coded consecutive integers, a worst-case low-entropy input:
// each label differs from the previous one by a single bit, so any weakness
// in the generator's diffusion shows up quickly. Words are written
// little-endian to the output, ready to pipe into PractRand:
//
//	stream -seed "my seed value" | RNG_test stdin64 -multithreaded
package stream

import (
	"bufio"
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/louisbranch/purerand"
	"github.com/louisbranch/purerand/internal/platform/config"
	"github.com/louisbranch/purerand/internal/random"
)

// Config holds stream command configuration.
type Config struct {
	Seed    string `env:"PURERAND_STREAM_SEED"`
	Hasher  string `env:"PURERAND_STREAM_HASHER" envDefault:"xxhash64"`
	Count   uint64 `env:"PURERAND_STREAM_COUNT"`
	Verbose bool   `env:"PURERAND_STREAM_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "Root seed value (random when empty)")
	fs.StringVar(&cfg.Hasher, "hasher", cfg.Hasher, "Registered hasher name")
	fs.Uint64Var(&cfg.Count, "count", cfg.Count, "Number of words to emit (0 = unbounded)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log the effective seed to stderr")
	if err := config.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes cfg.Count words (or an unbounded stream) to w.
//
// Each word is the single-shot finalization of one derived seed path, so the
// output exercises the cross-seed statistical regime. A write failure ends
// the stream quietly: downstream closing the pipe is the normal way an
// unbounded run stops.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	root, err := rootGenerator(cfg.Hasher, cfg.Seed, cfg.Verbose)
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, 1<<16)
	var buf [8]byte
	for i := uint64(0); cfg.Count == 0 || i < cfg.Count; i++ {
		if i&0xfff == 0 && ctx.Err() != nil {
			break
		}
		gray := i ^ (i >> 1)
		binary.LittleEndian.PutUint64(buf[:], root.Derive(gray).Uint64())
		if _, err := bw.Write(buf[:]); err != nil {
			return nil
		}
	}
	if err := bw.Flush(); err != nil {
		return nil
	}
	return ctx.Err()
}

// rootGenerator builds the root generator for a stream tool, falling back to
// a crypto/rand seed when none is configured.
func rootGenerator(hasherName, seed string, verbose bool) (*purerand.Generator, error) {
	if seed != "" {
		return purerand.NewNamed(hasherName, seed)
	}
	s, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Using seed: %d\n", s)
	}
	return purerand.NewNamed(hasherName, s)
}
