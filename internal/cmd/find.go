package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/harrison/systools/internal/display"
	"github.com/harrison/systools/internal/finder"
	"github.com/harrison/systools/internal/logger"
	"github.com/spf13/cobra"
)

// NewFindCommand creates the tinyfind command
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tinyfind",
		Short: "Find all files that match the regex",
		Long: `Walk the directory tree under --where and print every file or
directory whose base name fully matches --regex.

Paths given with --exclude (repeatable) are pruned together with their
subtrees. Paths are compared by identity, so any spelling of the same
directory works. Symbolic links are listed but not followed.

Example:
  tinyfind --where .. --exclude ../build -r '.*\.go'`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			where, _ := cmd.Flags().GetString("where")
			if !cmd.Flags().Changed("where") && cfg.Find.Where != "" {
				where = cfg.Find.Where
			}
			pattern, _ := cmd.Flags().GetString("regex")
			excludes, _ := cmd.Flags().GetStringArray("exclude")
			count, _ := cmd.Flags().GetBool("count")

			req := finder.Request{
				Where:    where,
				Pattern:  pattern,
				Excludes: append(append([]string{}, cfg.Find.Excludes...), excludes...),
			}

			return runFind(cmd.Context(), req, count, cmd.OutOrStdout(), cmd.ErrOrStderr(), newLogger(cmd, cfg))
		},
	}

	cmd.Flags().StringP("where", "w", finder.DefaultWhere, "The starting dir to search")
	cmd.Flags().StringP("regex", "r", finder.DefaultPattern, "The regex to match")
	cmd.Flags().StringArrayP("exclude", "e", nil, "The dir to be excluded (repeatable)")
	cmd.Flags().Bool("count", false, "Print the number of matches after the list")
	addCommonFlags(cmd)

	return cmd
}

// runFind performs the search and prints each match on its own line.
func runFind(ctx context.Context, req finder.Request, count bool, out, errOut io.Writer, log logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := req.Validate(); err != nil {
		return err
	}

	log.Debugf("searching %s for %q excluding %v", req.Where, req.Pattern, req.Excludes)
	fmt.Fprintf(out, "Start finding regex: %s in %s:\n", req.Pattern, req.Where)

	result, err := finder.Find(ctx, req, func(path string) {
		fmt.Fprintln(out, path)
	})
	if result != nil {
		if len(result.MissingExcludes) > 0 {
			display.WarnMissingExcludes(result.MissingExcludes).Display(errOut)
		}
		for _, walkErr := range result.Errors {
			log.Warnf("%v", walkErr)
		}
	}
	if err != nil {
		return err
	}

	log.Infof("visited %d entries, pruned %d, matched %d", result.Visited, result.Pruned, result.Matched)
	if count {
		fmt.Fprintf(out, "%d match(es)\n", result.Matched)
	}
	return nil
}
