package cli

import (
	"context"
	"os"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/adapter"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/policy"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/repository"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/assistant"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/chat"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// config holds configuration values
type config struct {
	// Repository
	project  string
	database string
	dataFile string

	// Adapters
	bucket      string
	prefix      string
	calendarID  string
	credentials string
	policyDir   string

	// Logging
	logLevel  string
	logFormat string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Google Cloud project ID. Firestore is used when set",
			Sources:     cli.EnvVars("GOOGLE_CLOUD_PROJECT"),
			Destination: &cfg.project,
		},
		&cli.StringFlag{
			Name:        "database",
			Aliases:     []string{"d"},
			Usage:       "Firestore database ID",
			Value:       "(default)",
			Sources:     cli.EnvVars("FIRESTORE_DATABASE_ID"),
			Destination: &cfg.database,
		},
		&cli.StringFlag{
			Name:        "data",
			Usage:       "YAML file with tasks, notes, events and weather. Used when no project is set",
			Sources:     cli.EnvVars("ASSISTANT_DATA_FILE"),
			Destination: &cfg.dataFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("ASSISTANT_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			Value:       "console",
			Sources:     cli.EnvVars("ASSISTANT_LOG_FORMAT"),
			Destination: &cfg.logFormat,
		},
	}
}

// adapterFlags returns flags for external data sources with destination config
func adapterFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Cloud Storage bucket to archive conversation snapshots",
			Sources:     cli.EnvVars("ASSISTANT_BUCKET"),
			Destination: &cfg.bucket,
		},
		&cli.StringFlag{
			Name:        "bucket-prefix",
			Usage:       "Object prefix in the archive bucket",
			Sources:     cli.EnvVars("ASSISTANT_BUCKET_PREFIX"),
			Destination: &cfg.prefix,
		},
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Directory of rego files deciding the intent (package intent). Built-in rules are used when empty",
			Sources:     cli.EnvVars("ASSISTANT_POLICY_DIR"),
			Destination: &cfg.policyDir,
		},
		&cli.StringFlag{
			Name:        "calendar-id",
			Usage:       "Google Calendar ID to read events from, e.g. primary",
			Sources:     cli.EnvVars("ASSISTANT_CALENDAR_ID"),
			Destination: &cfg.calendarID,
		},
		&cli.StringFlag{
			Name:        "credentials",
			Usage:       "Service account credentials file for Google Calendar",
			Sources:     cli.EnvVars("GOOGLE_APPLICATION_CREDENTIALS"),
			Destination: &cfg.credentials,
		},
	}
}

// withLogger puts the configured logger into ctx. Logs always go to stderr so that stdout stays
// usable for replies and the MCP stdio transport.
func (cfg *config) withLogger(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, cfg.logFormat, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// newRepository creates a Firestore repository when a project is configured, otherwise an
// in-memory one seeded from the data file.
func (cfg *config) newRepository() (repository.Repository, func(), error) {
	if cfg.project != "" {
		if cfg.database == "" {
			return nil, nil, goerr.New("database is required")
		}

		repo, err := repository.New(cfg.project, cfg.database)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to create repository")
		}
		return repo, func() { _ = repo.Close() }, nil
	}

	if cfg.dataFile != "" {
		repo, err := repository.LoadFile(cfg.dataFile)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to load data file")
		}
		return repo, func() {}, nil
	}

	return repository.NewMemory(model.Snapshot{}), func() {}, nil
}

// newStorage creates a Storage adapter instance. It returns nil when no bucket is configured.
func (cfg *config) newStorage(ctx context.Context) (adapter.Storage, error) {
	if cfg.bucket == "" {
		return nil, nil
	}

	var opts []adapter.StorageOption
	if cfg.prefix != "" {
		opts = append(opts, adapter.WithPrefix(cfg.prefix))
	}

	storage, err := adapter.NewStorage(ctx, cfg.bucket, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage")
	}
	return storage, nil
}

// newEngine creates the assistant engine, classifying with the rego policies in the policy
// directory when one is configured
func (cfg *config) newEngine(ctx context.Context) (*assistant.Engine, error) {
	if cfg.policyDir == "" {
		return assistant.New(), nil
	}

	classifier, err := policy.Load(ctx, cfg.policyDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load intent policy")
	}
	if classifier == nil {
		logging.From(ctx).Warn("no rego files in policy directory, using built-in rules", "dir", cfg.policyDir)
		return assistant.New(), nil
	}

	return assistant.New(assistant.WithClassifier(classifier.Func(ctx))), nil
}

// newLoader wires the snapshot sources. Events come from Google Calendar when a calendar ID is
// configured. Weather comes from the data file when it has a reading, otherwise from the static
// widget source.
func (cfg *config) newLoader(ctx context.Context, repo repository.Repository) (*chat.Loader, error) {
	loader := &chat.Loader{
		Tasks:   repo,
		Notes:   repo,
		Events:  repo,
		Weather: adapter.NewStaticWeather(),
	}

	// The in-memory reading never changes within a process, so one check decides the source
	if ws, ok := repo.(repository.WeatherSource); ok {
		if reading, err := ws.GetWeather(ctx); err == nil && reading.Known() {
			loader.Weather = ws
		}
	}

	if cfg.calendarID != "" {
		cal, err := adapter.NewCalendar(ctx, cfg.calendarID, cfg.credentials)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create calendar")
		}
		loader.Events = cal
	}

	return loader, nil
}
