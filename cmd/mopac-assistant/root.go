package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/poku-e/MopacAssistant/internal/config"
	"github.com/poku-e/MopacAssistant/internal/dataset"
	"github.com/poku-e/MopacAssistant/internal/errors"
	"github.com/poku-e/MopacAssistant/internal/logger"
	"github.com/poku-e/MopacAssistant/internal/lookup"
)

// app is what every subcommand runs against, built once per invocation.
type app struct {
	cfg    *config.Config
	bundle *dataset.Bundle
	svc    *lookup.Service
}

type rootOptions struct {
	configPath string
	root       *cobra.Command
	app        *app
}

// flagKeys maps persistent and local flags to their config keys.
var flagKeys = map[string]string{
	"data-dir":  "data.dir",
	"log-json":  "log.json",
	"log-level": "log.level",
	"addr":      "server.addr",
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "mopac-assistant",
		Short: "MOPAC Assistant - supported elements and keyword reference",
		Long: `MOPAC Assistant - your guide to computational chemistry keywords and elements.

Browse which semi-empirical methods (PM7, PM6, AM1, ...) support each element
and look up MOPAC keywords. Runs as a terminal UI by default, or as a local
web app with "serve".

Examples:
  mopac-assistant                       # terminal UI
  mopac-assistant serve                 # web UI on :8080
  mopac-assistant element Zn            # methods supporting zinc
  mopac-assistant keyword 1SCF          # describe a keyword
  mopac-assistant export --out m.xlsx   # element x method matrix`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	opts.root = root

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a TOML config file (default: ./mopac.toml if present)")
	pf.String("data-dir", "", "Directory holding elements.json, methods_data.json and keywords.json")
	pf.Bool("log-json", false, "Emit JSON logs")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(opts),
		newTUICmd(opts),
		newElementCmd(opts),
		newKeywordCmd(opts),
		newKeywordsCmd(opts),
		newExportCmd(opts),
		newStatusCmd(opts),
	)
	return root
}

// setup resolves configuration, starts logging and loads the datasets.
// Load problems are logged, never fatal.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	v, err := config.New(o.configPath)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return errors.Wrap(err, "initialize logger")
	}

	bundle := dataset.LoadBundle(dataset.Paths{
		Elements: cfg.ElementsPath(),
		Methods:  cfg.MethodsPath(),
		Keywords: cfg.KeywordsPath(),
	})
	o.app = &app{cfg: cfg, bundle: bundle, svc: lookup.FromBundle(bundle)}
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}
	return nil
}

// unavailable is the error for a query against a dataset that did not load.
func (a *app) unavailable(kind dataset.Kind) error {
	err := errors.Newf("%s dataset unavailable", kind)
	if p, ok := a.bundle.Problem(kind); ok {
		err = errors.Wrapf(p.Err, "%s dataset unavailable (%s)", kind, p.Reason())
	}
	return errors.WithHint(err, "check data.dir or --data-dir; `mopac-assistant status` lists every dataset")
}
