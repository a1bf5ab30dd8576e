// Command insight evaluates community structures of molecular contact
// networks: domain-agreement scoring, information-theoretic partition
// comparison, partition quality metrics, and supernetwork matching.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/proteinnetworks/insight/pkg/config"
	"github.com/proteinnetworks/insight/pkg/store"
	"github.com/proteinnetworks/insight/pkg/supernetwork"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type app struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "insight",
		Short:        "Community structure evaluation for molecular contact networks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to YAML config file")

	root.AddCommand(
		newScoreCmd(a),
		newCompareCmd(a),
		newQualityCmd(a),
		newSuperNetworkCmd(a),
		newIsomorphsCmd(a),
	)
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// openStore builds the configured store stack. The returned closer releases
// every layer.
func (a *app) openStore() (supernetwork.Store, func(), error) {
	var base supernetwork.Store
	closers := []func(){}

	if a.cfg.StoreInMemory {
		base = store.NewMemoryStore()
	} else {
		badgerStore, err := store.OpenBadgerStore(store.DefaultBadgerConfig(a.cfg.StorePath))
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = badgerStore.Close() })
		base = badgerStore
	}

	if a.cfg.CacheLookups {
		cached, err := store.NewCachedStore(base)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, cached.Close)
		base = cached
	}

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return base, closeAll, nil
}

func (a *app) newBuilder(s supernetwork.Store) *supernetwork.Builder {
	cfg := supernetwork.BuilderConfig{
		NumWorkers:          a.cfg.NumWorkers,
		SimilarityThreshold: a.cfg.SimilarityThreshold,
		Logger:              a.logger,
	}
	return supernetwork.NewBuilder(s, cfg)
}
