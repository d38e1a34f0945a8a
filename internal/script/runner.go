// Package script parses and executes the game's line-oriented command
// format: one command per line, whitespace-separated arguments.
//
//	draw_card NAME ATT HP
//	battle ATT HP HEAL
//	steal_card ATT HP
//	find_winning
//	deck_count
//	discard_pile_count
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/game"
)

// Runner executes commands against a single game.
type Runner struct {
	mgr *game.Manager
}

// NewRunner wraps a manager.
func NewRunner(mgr *game.Manager) *Runner {
	return &Runner{mgr: mgr}
}

// Execute runs one command line and returns its output line. Blank lines
// yield an empty output and no error.
func (r *Runner) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	switch cmd := fields[0]; cmd {
	case "draw_card":
		if len(fields) < 2 {
			return "", fmt.Errorf("draw_card: missing card name")
		}
		name := fields[1]
		att, hp, err := twoInts(cmd, fields[2:])
		if err != nil {
			return "", err
		}
		return r.mgr.DrawCard(name, att, hp), nil

	case "battle":
		args, err := ints(cmd, fields[1:], 3)
		if err != nil {
			return "", err
		}
		return r.mgr.Battle(args[0], args[1], args[2]), nil

	case "steal_card":
		att, hp, err := twoInts(cmd, fields[1:])
		if err != nil {
			return "", err
		}
		return r.mgr.StealCard(att, hp), nil

	case "find_winning":
		return r.mgr.Winner(), nil

	case "deck_count":
		return r.mgr.DeckCount(), nil

	case "discard_pile_count":
		return r.mgr.DiscardCount(), nil

	default:
		return "", fmt.Errorf("invalid command: %s", cmd)
	}
}

// Run processes all commands from in, writing one output line per command to
// out. It stops at the first invalid command.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		result, err := r.Execute(line)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, result); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return scanner.Err()
}

func twoInts(cmd string, args []string) (int, int, error) {
	vals, err := ints(cmd, args, 2)
	if err != nil {
		return 0, 0, err
	}
	return vals[0], vals[1], nil
}

func ints(cmd string, args []string, want int) ([]int, error) {
	if len(args) < want {
		return nil, fmt.Errorf("%s: want %d arguments, got %d", cmd, want, len(args))
	}
	vals := make([]int, want)
	for i := 0; i < want; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", cmd, i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}
