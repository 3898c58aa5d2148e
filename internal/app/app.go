package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/filemanager/internal/config"
	"github.com/GriffinCanCode/filemanager/internal/console"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/logging"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/filemanager/internal/providers/filesystem"
	"github.com/GriffinCanCode/filemanager/internal/providers/navigation"
	"github.com/GriffinCanCode/filemanager/internal/providers/system"
	"github.com/GriffinCanCode/filemanager/internal/service"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shell"
	"github.com/GriffinCanCode/filemanager/internal/tasks"
)

// Options carries the process surface the app runs against
type Options struct {
	In   io.Reader
	Out  io.Writer
	Args []string

	// StartDir overrides the home directory as the initial location
	StartDir string
	// Host overrides the real machine for the os verb
	Host system.Host
	// Logger overrides the configured logger
	Logger *logging.Logger
}

// App is one running file manager
type App struct {
	cfg     *config.Config
	logger  *logging.Logger
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
	shell   *shell.Shell
}

// New builds an app from configuration
func New(cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		var err error
		logger, err = logging.New(cfg.Logging.LoggerConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	host := opts.Host
	if host == nil {
		host = system.RuntimeHost{}
	}

	start := opts.StartDir
	if start == "" {
		home, err := host.HomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to find home directory: %w", err)
		}
		start = home
	}

	out := console.New(opts.Out)
	metrics := monitoring.NewMetrics()
	tracer := tracing.New("filemanager", logger.Logger)
	runner := tasks.NewRunner(
		tasks.WithLogger(logger),
		tasks.WithMetrics(metrics),
		tasks.WithTracer(tracer),
		tasks.WithReporter(shell.TaskReporter(out)),
	)

	fsys := filesystem.OSFS{}
	registry := service.NewRegistry()
	if err := registerProviders(registry, logger, fsys, runner, out, host, cfg); err != nil {
		return nil, err
	}

	sess := session.New(start, session.ParseDisplayName(opts.Args), fsys)
	dispatcher := shell.NewDispatcher(registry, logger, metrics, tracer)

	return &App{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		shell:   shell.New(opts.In, out, sess, dispatcher, runner, logger),
	}, nil
}

func registerProviders(registry *service.Registry, logger *logging.Logger, fsys filesystem.FS, runner *tasks.Runner, out *console.Console, host system.Host, cfg *config.Config) error {
	hasher := cfg.Hash.Hasher()
	codec := cfg.Compression.Codec()
	providers := []service.Provider{
		navigation.NewProvider(),
		filesystem.NewProvider(fsys, runner, out, hasher, codec),
		system.NewProvider(host),
	}
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("failed to register %s provider: %w", p.Definition().ID, err)
		}
	}

	stats := registry.Stats()
	logger.Debug("Registered providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("verbs", stats["total_verbs"]),
		zap.Strings("verb_names", registry.Verbs()),
		zap.String("hash_algorithm", string(hasher.Algorithm())),
		zap.Stringer("compression_level", codec.Level()),
	)
	return nil
}

// Run runs the REPL until input closes or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	err := a.shell.Run(ctx)

	if path := a.cfg.Metrics.File; path != "" {
		if werr := a.metrics.WriteTextfile(path); werr != nil {
			a.logger.Warn("Failed to write metrics", zap.Error(werr))
		}
	}
	a.logger.Debug("Session summary", zap.String("metrics", a.metrics.Summary()))
	return err
}

// Close flushes the tracer and logger
func (a *App) Close() error {
	a.tracer.Close()
	a.logger.Close()
	return nil
}
