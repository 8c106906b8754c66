// Package cli implements the carbontrack command tree.
package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecotrace/carbontrack/internal/calc"
	"github.com/ecotrace/carbontrack/internal/config"
	"github.com/ecotrace/carbontrack/internal/factors"
	"github.com/ecotrace/carbontrack/internal/geo"
	"github.com/ecotrace/carbontrack/internal/logging"
	"github.com/ecotrace/carbontrack/internal/store"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// app holds the collaborators shared by every subcommand. Fields left nil
// are constructed in the root PersistentPreRunE; tests preset them to
// inject stubs.
type app struct {
	cfg       *config.Config
	logger    zerolog.Logger
	logResult logging.Result

	calculator *calc.Calculator
	store      store.Store
	provider   geo.DistanceProvider
}

// NewRootCmd creates the root cobra command for the carbontrack CLI.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, &app{})
}

// newRootCmd wires the command tree around an app, which tests may
// pre-populate with stub collaborators.
func newRootCmd(version string, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carbontrack",
		Short:   "Estimate CO2 emissions for everyday activities",
		Long:    "CarbonTrack estimates greenhouse-gas emissions (kg CO2e) for transportation, energy use, food, purchased goods, and waste disposal.",
		Version: version,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.logResult.Close()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.carbontrack/config.yaml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json)")
	cmd.PersistentFlags().Bool("save", false, "save the result to the local history")
	cmd.PersistentFlags().Bool("no-save", false, "never save or prompt to save")

	cmd.AddCommand(
		newTransportCmd(a),
		newEnergyCmd(a),
		newFoodCmd(a),
		newConsumptionCmd(a),
		newWasteCmd(a),
		newFlightCmd(a),
		newHistoryCmd(a),
		newFactorsCmd(a),
	)

	return cmd
}

// setup loads config, initializes logging, and constructs the calculator
// and collaborators that have not been injected already.
func (a *app) setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")

	if a.cfg == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	loggingCfg := logging.Config{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}
	a.logResult = logging.New(loggingCfg)
	a.logger = logging.ComponentLogger(a.logResult.Logger, "cli")

	if a.calculator == nil {
		table, err := factors.Load(a.cfg.Factors)
		if err != nil {
			return fmt.Errorf("loading emission factors: %w", err)
		}
		a.calculator = calc.New(table)
	}

	if a.store == nil {
		fileStore, err := store.NewFileStore(a.cfg.History)
		if err != nil {
			return fmt.Errorf("opening emission history: %w", err)
		}
		a.store = fileStore
	}

	if a.provider == nil {
		opts := []geo.Option{
			geo.WithEndpoints(a.cfg.Geo.GeocodeURL, a.cfg.Geo.RouteURL),
		}
		if a.cfg.Geo.TimeoutSeconds > 0 {
			opts = append(opts, geo.WithHTTPClient(&http.Client{
				Timeout: time.Duration(a.cfg.Geo.TimeoutSeconds) * time.Second,
			}))
		}
		a.provider = geo.NewRoutingProvider(opts...)
	}

	a.logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

const rootCmdExample = `  # 100 km petrol car trip shared by 2 passengers
  carbontrack transport --type car --fuel petrol --distance 100 --passengers 2

  # 250 kWh of grid electricity
  carbontrack energy --type electricity --source grid_average --amount 250

  # Two servings of locally sourced beef
  carbontrack food --type meat --item beef --amount 2 --unit servings --local

  # A smartphone amortized over 5 years of use
  carbontrack consumption --type electronics --item smartphone --lifetime 5

  # 10 kg of landfill waste
  carbontrack waste --method landfill --amount 10

  # Flight emissions with the distance resolved by place name
  carbontrack flight --from Berlin --to Madrid

  # Browse previously saved results
  carbontrack history --tui`
