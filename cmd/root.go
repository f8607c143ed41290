package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingoflow/internal/config"
	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/logging"
	"github.com/abhisek/lingoflow/internal/session"
	"github.com/abhisek/lingoflow/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "lingoflow",
	Short:         "Adaptive language practice sessions",
	Long:          "Lingoflow generates practice sessions from a sentence corpus, grades them and tracks learner progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides LINGOFLOW_DB env var)")
	flags.String("corpus", "", "Path to a YAML catalog replacing the embedded one (overrides LINGOFLOW_CORPUS)")
	flags.String("log", "", "Log mode: dev, prod or quiet (overrides LINGOFLOW_LOG)")
	flags.String("learner", defaultLearner(), "Learner id (defaults to LINGOFLOW_LEARNER or \"local\")")
	flags.Bool("json", false, "Print JSON instead of styled text")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(versionCmd)
}

func defaultLearner() string {
	if l := os.Getenv("LINGOFLOW_LEARNER"); l != "" {
		return l
	}
	return "local"
}

// loadConfig reads .env and LINGOFLOW_* variables, then applies the
// persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("corpus"); p != "" {
		cfg.CorpusPath = p
	}
	if m, _ := cmd.Flags().GetString("log"); m != "" {
		cfg.LogMode = m
	}
	return cfg, cfg.Validate()
}

// resolveDBPath returns the database path from config (flag or
// LINGOFLOW_DB), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func loadCorpus(cfg config.Config) (*corpus.Catalog, error) {
	if cfg.CorpusPath == "" {
		return corpus.Default()
	}
	f, err := os.Open(cfg.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return corpus.Load(f)
}

// env is the wired runtime of a command.
type env struct {
	svc     *session.Service
	catalog *corpus.Catalog
	log     *logging.Logger
	learner string
	json    bool
	close   func()
}

// openEnv opens the store and builds the session service. Callers must
// call close.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	catalog, err := loadCorpus(cfg)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath)

	learner, _ := cmd.Flags().GetString("learner")
	asJSON, _ := cmd.Flags().GetBool("json")

	svc := session.NewService(session.Deps{
		Repo:   st.Repo(),
		Corpus: catalog,
		Log:    log,
	}, cfg.SessionOptions())

	return &env{
		svc:     svc,
		catalog: catalog,
		log:     log,
		learner: learner,
		json:    asJSON,
		close: func() {
			st.Close()
			log.Sync()
		},
	}, nil
}
