// Package main provides the CLI interface for shamv.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sivchari/shamv/internal/config"
	"github.com/sivchari/shamv/internal/digest"
	"github.com/sivchari/shamv/internal/logging"
	"github.com/sivchari/shamv/pkg/shamv"
)

const version = "0.1.0"

// errUsage marks errors already reported together with the usage text.
var errUsage = errors.New("usage")

type options struct {
	cfg            *config.Config
	showVersion    bool
	listAlgorithms bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   shamv.ProgramName + " [OPTION...] FILE...",
		Short: "Rename files to the hash of their content",
		Long: `shamv renames each FILE operand to a destination path formed from the
cryptographic hash of the content of the file.

If the FILE name has an extension, the destination is the hash followed by the
final extension of the original name (archive.tar.gz keeps ".gz"). The file
stays in its original directory.

An existing destination is never overwritten unless --force is given.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.cfg.Algorithm, "algorithm", "a", "", "digest algorithm: sha224, sha256 (default), sha384, sha512, sha3-256, sha3-512, blake2b-256, blake2b-512 or blake3")
	flags.BoolVarP(&opts.cfg.DryRun, "dry-run", "n", false, "display the current and new filenames but do not perform the rename")
	flags.BoolVarP(&opts.cfg.Force, "force", "f", false, "overwrite an existing destination file")
	flags.StringVarP(&opts.cfg.OutputFormat, "output", "o", config.FormatText, "output format (text, json, yaml)")
	flags.BoolVarP(&opts.cfg.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	flags.BoolVarP(&opts.showVersion, "version", "V", false, "print the version of the program and exit")
	flags.BoolVar(&opts.listAlgorithms, "list-algorithms", false, "list supported algorithms and exit")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string, stdout, stderr io.Writer) error {
	if opts.showVersion {
		fmt.Fprintf(stdout, "%s version %s\n", shamv.ProgramName, version)
		return nil
	}

	if opts.listAlgorithms {
		for _, alg := range digest.Algorithms() {
			fmt.Fprintf(stdout, "%-12s %d\n", alg, alg.HexLen())
		}

		return nil
	}

	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprintf(stderr, "%s: %v\n", shamv.ProgramName, shamv.ErrInsufficientArguments)
		cmd.SetOut(stderr)
		_ = cmd.Usage()

		return fmt.Errorf("%w: %w", errUsage, shamv.ErrInsufficientArguments)
	}

	cfg.Color = logging.IsTerminal(stdout) && os.Getenv("NO_COLOR") == ""

	engine, err := shamv.NewEngine(cfg, stdout, stderr, logging.New(stderr, cfg.Verbose))
	if err != nil {
		return err
	}

	return engine.Run(args)
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil && !errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "%s: %v\n", shamv.ProgramName, err)
	}

	return shamv.ExitCode(err)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
