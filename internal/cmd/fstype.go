package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/systools/internal/fstype"
	"github.com/harrison/systools/internal/logger"
	"github.com/spf13/cobra"
)

// NewFSTypeCommand creates the fstype command
func NewFSTypeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fstype <path>",
		Short: "Show the filesystem type a path belongs to",
		Long: `Query the operating system for the filesystem that backs <path>
and print its type name, e.g. "FS: ext4".

Exit code: 0 on success, 1 on a wrong argument count or a failed query`,
		Args:          cobra.ExactArgs(1),
		Version:       Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only useful for argument errors.
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			showMagic, _ := cmd.Flags().GetBool("magic")

			return runFSType(args[0], showMagic, cmd.OutOrStdout(), newLogger(cmd, cfg))
		},
	}

	cmd.Flags().Bool("magic", false, "Append the raw filesystem type number when the platform reports one")
	addCommonFlags(cmd)

	return cmd
}

// runFSType looks up the filesystem of path and prints "FS: <name>" to out.
func runFSType(path string, showMagic bool, out io.Writer, log logger.Logger) error {
	log.Debugf("statfs %s", path)

	info, err := fstype.Stat(path)
	if err != nil {
		log.Debugf("statfs %s failed: %v", path, err)
		return err
	}

	name := info.Name
	if showMagic {
		name = info.String()
	}
	fmt.Fprintf(out, "FS: %s\n", name)
	return nil
}
