// Package cli wires configuration, the URL list and the download manager
// into the planetmoney-dl command.
package cli

import (
	"context"
	"io"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/handiism/planetmoney-dl/internal/config"
	"github.com/handiism/planetmoney-dl/internal/download"
	"github.com/handiism/planetmoney-dl/internal/http"
	"github.com/handiism/planetmoney-dl/internal/report"
	"github.com/handiism/planetmoney-dl/internal/urllist"
)

type options struct {
	transport nethttp.RoundTripper
}

// Option configures the command.
type Option func(*options)

// WithTransport makes every request go through rt.
func WithTransport(rt nethttp.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

type flags struct {
	configPath string
	urlsPath   string
	pattern    string
	timeout    time.Duration
	verbose    bool
	atomic     bool
	tag        bool
	playlist   bool
}

// NewCommand builds the root command. Notices go to stdout, diagnostics
// to stderr.
func NewCommand(stdout, stderr io.Writer, opts ...Option) *cobra.Command {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var f flags
	cmd := &cobra.Command{
		Use:   "planetmoney-dl [destination-folder]",
		Short: "Download NPR podcast episodes linked from the pages listed in urls.txt",
		Long: `planetmoney-dl reads one page URL per line from urls.txt, fetches each
page, finds the NPR MP3 links on it and saves every file into the
destination folder (the current directory by default).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f, &o, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "path to a JSON config file (default "+config.DefaultFileName+" if present)")
	fs.StringVar(&f.urlsPath, "urls", urllist.DefaultFileName, "file with one page URL per line")
	fs.StringVar(&f.pattern, "pattern", "", "built-in media pattern name")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-request timeout, 0 for none")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every fetch and swallowed error")
	fs.BoolVar(&f.atomic, "atomic", false, "write to a .part file and rename when complete")
	fs.BoolVar(&f.tag, "tag", false, "write ID3 tags to downloaded files")
	fs.BoolVar(&f.playlist, "playlist", false, "write a playlist of downloaded files")

	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags, o *options, stdout, stderr io.Writer) error {
	settings, err := loadSettings(cmd, args, f)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(stderr, settings.LogLevel)
	if err != nil {
		return err
	}

	pageURLs, err := urllist.Read(settings.URLListPath)
	if err != nil {
		logger.Debug("no page list", "path", settings.URLListPath, "error", err)
	}
	logger.Debug("loaded page list", "path", settings.URLListPath, "count", len(pageURLs))

	printer := report.NewPrinter(stdout, f.verbose)
	managerOpts := []download.Option{download.WithLogger(logger)}
	if o.transport != nil {
		client := http.NewClient(append(settings.HTTPOptions(), http.WithTransport(o.transport))...)
		managerOpts = append(managerOpts, download.WithHTTPClient(client))
	}

	manager, err := download.NewManager(settings, printer.Print, managerOpts...)
	if err != nil {
		return err
	}

	runErr := manager.Scrape(cmd.Context(), pageURLs, settings.DestinationFolder)
	logSummary(logger, manager.Progress())
	return runErr
}

// loadSettings applies, in order: defaults, the config file, explicitly
// set flags and the positional destination. A --config file must exist;
// the default one is optional.
func loadSettings(cmd *cobra.Command, args []string, f *flags) (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if f.configPath != "" {
		settings, err = config.LoadFile(f.configPath)
	} else {
		settings, err = config.Load(config.DefaultFileName)
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("urls") {
		settings.URLListPath = f.urlsPath
	}
	if changed("pattern") {
		settings.MediaPattern = f.pattern
		settings.MediaPatternExpr = ""
	}
	if changed("timeout") {
		settings.HTTPTimeout = f.timeout.Seconds()
	}
	if changed("atomic") {
		settings.AtomicWrites = f.atomic
	}
	if changed("tag") {
		settings.ModifyTags = f.tag
	}
	if changed("playlist") {
		settings.CreatePlaylist = f.playlist
	}
	if f.verbose {
		settings.LogLevel = "debug"
	}
	if len(args) == 1 {
		settings.DestinationFolder = args[0]
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func logSummary(logger *log.Logger, p download.Progress) {
	logger.Info("finished",
		"pages", p.PagesFetched,
		"pages_failed", p.PagesFailed,
		"files", p.FilesDownloaded,
		"files_failed", p.FilesFailed,
		"bytes", p.BytesWritten,
	)
}

// Run executes the command with args. SIGINT and SIGTERM cancel the
// request in flight.
func Run(ctx context.Context, args []string, opts ...Option) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewCommand(os.Stdout, os.Stderr, opts...)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
