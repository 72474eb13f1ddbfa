package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"chipselect/internal/config"
	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
	"chipselect/internal/ui"
)

var version = "0.1.0"

const (
	outputText = "text"
	outputJSON = "json"
)

type options struct {
	configPath  string
	catalogPath string
	presets     []string
	output      string
	logPath     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "chipselect",
		Short: "Pick items from a catalog as chips in the terminal",
		Long: "chipselect shows a multi-select field: chosen items appear as removable chips " +
			"and the rest are offered as suggestions. The confirmed selection is printed on stdout.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "catalog file (.toml, .yaml or .yml)")
	cmd.Flags().StringArrayVar(&opts.presets, "preset", nil, "initially selected value (repeatable)")
	cmd.Flags().StringVar(&opts.output, "output", outputText, "selection format on stdout: text or json")
	cmd.PersistentFlags().StringVar(&opts.logPath, "log", "chipselect.log", "log file, empty to disable logging")

	cmd.AddCommand(newVersionCmd(), newInitCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chipselect %s\n", version)
		},
	}
}

func newInitCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			closeLog, err := setupLogging(opts.logPath)
			if err != nil {
				return err
			}
			defer closeLog()

			bus := eventbus.New()
			defer bus.Close()
			subscribeLogging(bus)

			svc := config.NewConfigServiceWithBus(bus)
			if opts.configPath == "" {
				err = svc.Save(config.DefaultConfig())
			} else {
				err = svc.SaveToPath(config.DefaultConfig(), path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}

func run(stdout io.Writer, opts *options) error {
	if opts.output != outputText && opts.output != outputJSON {
		return fmt.Errorf("unknown output format %q (want %s or %s)", opts.output, outputText, outputJSON)
	}

	// The terminal belongs to the UI
	closeLog, err := setupLogging(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, catalog, err := loadSetup(configSvc, opts)
	if err != nil {
		return err
	}
	log.Printf("Loaded catalog with %d items, preset %v", catalog.Len(), cfg.Preset)

	model := ui.NewModel(bus, cfg, catalog)

	// The UI draws on stderr so the selection on stdout can be piped
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if os.Getenv("CHIPSELECT_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	items, ok := model.Result()
	if !ok {
		log.Printf("Selection aborted")
		return nil
	}
	return writeSelection(stdout, items, opts.output)
}

// loadSetup resolves the config and catalog from flags, config file and defaults
func loadSetup(svc config.ConfigService, opts *options) (*config.Config, *domain.Catalog, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = svc.LoadFromPath(opts.configPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(opts.presets) > 0 {
		cfg.Preset = splitValues(opts.presets)
	}

	var catalog *domain.Catalog
	if opts.catalogPath != "" {
		catalog, err = config.LoadCatalog(opts.catalogPath)
	} else {
		catalog, err = svc.Catalog(cfg)
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, catalog, nil
}

// splitValues accepts both repeated flags and comma separated lists
func splitValues(raw []string) []string {
	var values []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func writeSelection(w io.Writer, items []domain.Item, format string) error {
	if format == outputJSON {
		if items == nil {
			items = []domain.Item{}
		}
		enc := json.NewEncoder(w)
		return enc.Encode(items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.Value); err != nil {
			return err
		}
	}
	return nil
}

// setupLogging points the standard logger at path, or discards it when path is empty
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return func() { logFile.Close() }, nil
}

func subscribeLogging(bus eventbus.EventBus) {
	logEvent := func(e eventbus.DomainEvent) {
		log.Printf("%s: %+v", e.Type(), e)
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventItemAdded,
		eventbus.EventItemRemoved,
		eventbus.EventSelectionCleared,
		eventbus.EventFocusMoved,
		eventbus.EventSelectionDone,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, logEvent)
	}
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", ev.Message, ev.Err)
		}
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
