package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/robert-malhotra/go-grd/grd"
	"github.com/robert-malhotra/go-grd/internal/config"
)

// errFilesFailed is returned when at least one file could not be decoded.
// Per-file errors have already been printed.
var errFilesFailed = errors.New("one or more files failed to decode")

// options holds flag values before they are merged into a config.Config.
type options struct {
	configPath string
	logLevel   string
	verbose    bool
	workers    int
	precision  int
}

func (o *options) register(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVar(&o.configPath, "config", "", "path to a TOML configuration file")
	fs.StringVar(&o.logLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVarP(&o.verbose, "verbose", "v", def.Verbose, "log decode warnings as they are found")
	fs.IntVarP(&o.workers, "workers", "j", def.Workers, "number of files decoded concurrently")
	fs.IntVar(&o.precision, "precision", def.Precision, "significant digits for printed values (-1 for exact)")
}

// resolve loads the config file, if any, and applies flags that were set
// explicitly on the command line.
func (o *options) resolve(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if fs.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if fs.Changed("workers") {
		cfg.Workers = o.workers
	}
	if fs.Changed("precision") {
		cfg.Precision = o.precision
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.Level())
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableSorting:   true,
	})
	return logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "grdinfo [flags] FILE...",
		Short: "Summarize Surfer .grd grid files",
		Long: `grdinfo decodes Surfer 6 ASCII (DSAA), Surfer 6 binary (DSBB) and
Surfer 7 binary (DSRB) grid files and prints their geometry, value
ranges and any decode warnings. Use - to read a grid from standard input.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(cfg, stderr)
			return runInfo(cmd.InOrStdin(), stdout, logger, cfg, args)
		},
	}
	opts.register(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "sniff FILE...",
		Short: "Print only the detected grid format of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSniff(stdout, args)
		},
	})
	return root
}

// result is the outcome of decoding one input.
type result struct {
	path     string
	grid     *grd.Grid
	warnings grd.Warnings
	err      error
}

func runInfo(stdin io.Reader, stdout io.Writer, logger *logrus.Logger, cfg config.Config, paths []string) error {
	var decodeOpts []grd.Option
	if cfg.Verbose {
		decodeOpts = append(decodeOpts, grd.WithLogger(logger))
	}

	results := make([]result, len(paths))
	var (
		eg        errgroup.Group
		stdinBuf  []byte
		stdinErr  error
		stdinRead bool
	)
	eg.SetLimit(cfg.Workers)
	for i, path := range paths {
		if path == "-" {
			// Standard input can only be consumed once; repeats reuse it.
			if !stdinRead {
				stdinBuf, stdinErr = io.ReadAll(stdin)
				stdinRead = true
			}
			if stdinErr != nil {
				results[i] = result{path: path, err: fmt.Errorf("reading stdin: %w", stdinErr)}
				continue
			}
			b := stdinBuf
			eg.Go(func() error {
				g, w, err := grd.DecodeBytes(b, decodeOpts...)
				results[i] = result{path: path, grid: g, warnings: w, err: err}
				return nil
			})
			continue
		}
		eg.Go(func() error {
			g, w, err := grd.DecodeFile(path, decodeOpts...)
			results[i] = result{path: path, grid: g, warnings: w, err: err}
			return nil
		})
	}
	_ = eg.Wait() // failures are kept per result

	failed := false
	for _, r := range results {
		if r.err != nil {
			failed = true
			logger.WithField("file", r.path).WithError(r.err).Error("decode failed")
			fmt.Fprintf(stdout, "== %s ==\nError: %v\n\n", r.path, r.err)
			continue
		}
		writeSummary(stdout, r.path, r.grid, r.warnings, cfg.Precision)
	}
	if failed {
		return errFilesFailed
	}
	return nil
}

func runSniff(stdout io.Writer, paths []string) error {
	failed := false
	for _, path := range paths {
		f, err := sniffFile(path)
		if err != nil {
			failed = true
			fmt.Fprintf(stdout, "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(stdout, "%s: %s (%s)\n", path, f, f.Magic())
	}
	if failed {
		return errFilesFailed
	}
	return nil
}

func sniffFile(path string) (grd.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return grd.FormatUnknown, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return grd.FormatUnknown, fmt.Errorf("stat file: %w", err)
	}
	return grd.Sniff(f, info.Size())
}
