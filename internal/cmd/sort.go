package cmd

import (
	"bufio"
	"container/list"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/harrison/systools/internal/filelock"
	"github.com/harrison/systools/internal/logger"
	"github.com/harrison/systools/internal/qsort"
	"github.com/spf13/cobra"
)

// randomCeiling bounds generated values to [0, randomCeiling).
const randomCeiling = 10000

// sortOptions holds the resolved qsort settings.
type sortOptions struct {
	Container string
	Reverse   bool
	Check     bool
	Output    string
	Random    int
	Seed      int64
}

// NewSortCommand creates the qsort command
func NewSortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qsort [number]...",
		Short: "Sort integers with the bidirectional quicksort",
		Long: `Sort integers given as arguments, read from stdin, or generated
with --random, and print them one per line.

The values are stored either in a slice or in a doubly linked list
(--container) and sorted in place by the same cursor-based quicksort.

Numbers starting with "-" would be read as flags, so negative values go
after "--".

Examples:
  qsort 3 1 2
  qsort -- 3 -1 2
  seq 10 | shuf | qsort --reverse
  qsort --random 10 --container list --output sorted.txt`,
		Version:       Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var containerFlag *string
			if cmd.Flags().Changed("container") {
				v, _ := cmd.Flags().GetString("container")
				containerFlag = &v
			}
			var checkFlag *bool
			if cmd.Flags().Changed("check") {
				v, _ := cmd.Flags().GetBool("check")
				checkFlag = &v
			}
			cfg.MergeWithFlags(nil, containerFlag, checkFlag)
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := sortOptions{
				Container: cfg.Sort.Container,
				Check:     cfg.Sort.Check,
			}
			opts.Reverse, _ = cmd.Flags().GetBool("reverse")
			opts.Output, _ = cmd.Flags().GetString("output")
			opts.Random, _ = cmd.Flags().GetInt("random")
			opts.Seed, _ = cmd.Flags().GetInt64("seed")

			return runSort(args, opts, cmd.InOrStdin(), cmd.OutOrStdout(), newLogger(cmd, cfg))
		},
	}

	cmd.Flags().String("container", "slice", "Storage to sort in: slice or list")
	cmd.Flags().Bool("reverse", false, "Sort in descending order")
	cmd.Flags().Bool("check", false, "Verify the result is ordered before printing it")
	cmd.Flags().StringP("output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().Int("random", 0, "Sort this many generated values in [0,10000) instead of reading input")
	cmd.Flags().Int64("seed", 0, "Seed for --random (0 = time based)")
	addCommonFlags(cmd)
	cmd.SetFlagErrorFunc(negativeNumberHint)

	return cmd
}

// negativeNumberHint points at "--" when a flag error came from a negative
// number such as "-1".
func negativeNumberHint(_ *cobra.Command, err error) error {
	msg := err.Error()
	idx := strings.LastIndex(msg, " in ")
	if !strings.HasPrefix(msg, "unknown shorthand flag") || idx < 0 {
		return err
	}
	if _, convErr := strconv.Atoi(msg[idx+len(" in "):]); convErr != nil {
		return err
	}
	return fmt.Errorf("%w (put negative numbers after --, e.g. qsort -- 3 -1 2)", err)
}

// runSort gathers the input values, sorts them and writes the result.
func runSort(args []string, opts sortOptions, in io.Reader, out io.Writer, log logger.Logger) error {
	values, err := gatherValues(args, opts, in, log)
	if err != nil {
		return err
	}

	less := func(a, b int) bool { return a < b }
	if opts.Reverse {
		less = func(a, b int) bool { return a > b }
	}

	start := time.Now()
	sorted, err := sortValues(values, opts.Container, less, opts.Check)
	if err != nil {
		return err
	}
	log.Debugf("sorted %d value(s) in a %s in %s", len(sorted), opts.Container, time.Since(start))

	var b strings.Builder
	for _, v := range sorted {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte('\n')
	}

	if opts.Output != "" {
		if err := filelock.LockAndWrite(opts.Output, []byte(b.String()), func(lockPath string) {
			log.Infof("waiting for %s held by another writer", lockPath)
		}); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.Output, err)
		}
		log.Infof("wrote %d value(s) to %s", len(sorted), opts.Output)
		return nil
	}

	_, err = io.WriteString(out, b.String())
	return err
}

// gatherValues returns the values to sort: generated, from args, or from in.
func gatherValues(args []string, opts sortOptions, in io.Reader, log logger.Logger) ([]int, error) {
	if opts.Random < 0 {
		return nil, fmt.Errorf("--random must be >= 0, got %d", opts.Random)
	}
	if opts.Random > 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("--random cannot be combined with positional numbers")
		}
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Debugf("generating %d value(s) with seed %d", opts.Random, seed)
		return randomValues(opts.Random, seed), nil
	}

	if len(args) > 0 {
		return parseValues(args)
	}

	var fields []string
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	log.Debugf("read %d value(s) from stdin", len(fields))
	return parseValues(fields)
}

func parseValues(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}

func randomValues(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(randomCeiling)
	}
	return values
}

// sortValues sorts values in the requested container and returns them in order.
func sortValues(values []int, container string, less func(a, b int) bool, check bool) ([]int, error) {
	switch container {
	case "list":
		l := list.New()
		for _, v := range values {
			l.PushBack(v)
		}
		qsort.ListFunc(l, less)
		if check {
			first, last := qsort.ListBounds[int](l)
			if !qsort.IsSortedFunc(first, last, less) {
				return nil, fmt.Errorf("check failed: list is not sorted")
			}
		}
		sorted := make([]int, 0, l.Len())
		for e := l.Front(); e != nil; e = e.Next() {
			sorted = append(sorted, e.Value.(int))
		}
		return sorted, nil

	case "slice", "":
		qsort.SliceFunc(values, less)
		if check {
			first, last := qsort.SliceBounds(values)
			if !qsort.IsSortedFunc(first, last, less) {
				return nil, fmt.Errorf("check failed: slice is not sorted")
			}
		}
		return values, nil

	default:
		return nil, fmt.Errorf("unknown container %q, must be one of: slice, list", container)
	}
}
