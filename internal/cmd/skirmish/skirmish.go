// Package skirmish runs a deterministic two-monster combat demo.
//
// It shows the seed-tree pattern in a game-shaped setting: a root generator
// seeded from the command line, one branch for monster generation, one for
// combat resolution, and within combat one branch per (turn, combatant).
// The same seed always replays the identical battle, however the
// surrounding code is reorganized.
package skirmish

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/louisbranch/purerand"
	"github.com/louisbranch/purerand/dice"
	"github.com/louisbranch/purerand/internal/platform/config"
	"github.com/louisbranch/purerand/internal/random"
)

// Config holds skirmish command configuration.
type Config struct {
	Seed     string `env:"PURERAND_SKIRMISH_SEED"`
	MaxTurns int    `env:"PURERAND_SKIRMISH_MAX_TURNS" envDefault:"50"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "Root seed value (random when empty)")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Stop after this many turns")
	if err := config.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Monster is a combatant in the skirmish.
type Monster struct {
	Color     string
	Health    int
	MaxHealth int
	HitChance float64
}

// generateMonster rolls a monster's stats from its own generator branch.
// Stats come from normal distributions, clamped into playable ranges.
func generateMonster(color string, gen *purerand.Generator) Monster {
	health := int(math.Round(purerand.Sample(gen.Derive("health"), purerand.Normal{Mean: 20, StdDev: 6})))
	if health < 1 {
		health = 1
	}

	hitChance := purerand.Sample(gen.Derive("hit chance"), purerand.Normal{Mean: 0.8, StdDev: 0.3})
	hitChance = math.Min(math.Max(hitChance, 0.5), 1)

	return Monster{
		Color:     color,
		Health:    health,
		MaxHealth: health,
		HitChance: hitChance,
	}
}

func (m Monster) String() string {
	bar := strings.Repeat("#", m.Health) + strings.Repeat(" ", m.MaxHealth-m.Health)
	return fmt.Sprintf("%s monster: %d/%dhp [%s] at %.0f%% hit chance",
		m.Color, m.Health, m.MaxHealth, bar, m.HitChance*100)
}

// Run plays the skirmish to the death (or cfg.MaxTurns) and writes the
// transcript to w.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	root, err := rootGenerator(cfg.Seed)
	if err != nil {
		return err
	}

	monsterGen := root.Derive("monster generation")
	red := generateMonster("red", monsterGen.Derive("red monster"))
	blue := generateMonster("blue", monsterGen.Derive("blue monster"))

	fmt.Fprintf(w, "%s\n%s\n", red, blue)

	combatGen := root.Derive("combat resolution")
	for turn := 1; turn <= cfg.MaxTurns; turn++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprintf(w, "~~~ Turn %d ~~~\n", turn)

		turnGen := combatGen.Derive(turn)
		if done := resolveAttack(w, &red, &blue, turnGen.Derive(red.Color)); done {
			return nil
		}
		if done := resolveAttack(w, &blue, &red, turnGen.Derive(blue.Color)); done {
			return nil
		}

		fmt.Fprintf(w, "%s\n%s\n", red, blue)
	}

	fmt.Fprintf(w, "The monsters fight to a draw after %d turns.\n", cfg.MaxTurns)
	return nil
}

// resolveAttack plays one attack from a turn-specific generator branch and
// reports whether the battle ended.
func resolveAttack(w io.Writer, attacker, target *Monster, gen *purerand.Generator) bool {
	hit := attacker.HitChance > gen.Derive("hit roll").Float64()
	if !hit {
		fmt.Fprintf(w, "The %s monster misses!\n", attacker.Color)
		return false
	}

	damage, err := dice.RollDice(gen.Derive("damage roll"), dice.Spec{Sides: 4, Count: 2})
	if err != nil {
		fmt.Fprintf(w, "The %s monster fumbles: %v\n", attacker.Color, err)
		return false
	}

	target.Health -= damage.Total
	fmt.Fprintf(w, "The %s monster hits for %d damage!\n", attacker.Color, damage.Total)

	if target.Health <= 0 {
		target.Health = 0
		fmt.Fprintf(w, "The %s monster was slain!\nThe %s monster is victorious!\n",
			target.Color, attacker.Color)
		return true
	}
	return false
}

// rootGenerator builds the root generator, falling back to a crypto/rand
// seed when none is configured.
func rootGenerator(seed string) (*purerand.Generator, error) {
	if seed != "" {
		return purerand.New(seed), nil
	}
	s, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return purerand.New(s), nil
}
