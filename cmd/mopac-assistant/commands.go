package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/poku-e/MopacAssistant/internal/dataset"
	"github.com/poku-e/MopacAssistant/internal/errors"
	"github.com/poku-e/MopacAssistant/internal/export"
	"github.com/poku-e/MopacAssistant/internal/logger"
	"github.com/poku-e/MopacAssistant/internal/lookup"
	"github.com/poku-e/MopacAssistant/internal/shell"
	"github.com/poku-e/MopacAssistant/internal/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(a.svc, a.bundle.Problems, a.cfg.Server.Addr)
			pterm.Info.Printfln("MOPAC Assistant listening on %s", a.cfg.Server.Addr)
			if err := srv.Run(ctx); err != nil {
				return err
			}
			logger.Named("cmd").Infow("server stopped")
			return nil
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	return cmd
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal interface (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *rootOptions) error {
	return shell.Run(opts.app.svc, opts.app.bundle.Problems)
}

func newElementCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "element <symbol>",
		Short: "List the methods that support an element",
		Example: `  mopac-assistant element Fe
  mopac-assistant element He --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if !a.svc.HasMethods() {
				return a.unavailable(dataset.KindMethods)
			}
			report := a.svc.Describe(args[0])
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, report)
			}
			if !report.Supported {
				fmt.Fprint(out, pterm.Warning.Sprintln(report.String()))
				return nil
			}
			data := pterm.TableData{{"Method", "Symbol", "Name", "Atomic No"}}
			for _, m := range report.Matches {
				data = append(data, []string{
					m.Method, m.Element.Symbol, m.Element.Name, strconv.Itoa(m.Element.AtomicNumber),
				})
			}
			return renderTable(out, data)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func newKeywordCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "keyword <name>",
		Short:   "Describe a MOPAC keyword",
		Example: `  mopac-assistant keyword PRECISE`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if !a.svc.HasKeywords() {
				return a.unavailable(dataset.KindKeywords)
			}
			desc := a.svc.Description(args[0])
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, map[string]any{
					"keyword":     args[0],
					"found":       desc != lookup.DescriptionNotFound,
					"description": desc,
				})
			}
			fmt.Fprint(out, pterm.DefaultSection.Sprintln(args[0]))
			for _, line := range a.svc.DescriptionLines(args[0]) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the description as JSON")
	return cmd
}

func newKeywordsCmd(opts *rootOptions) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List every known keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if !a.svc.HasKeywords() {
				return a.unavailable(dataset.KindKeywords)
			}
			out := cmd.OutOrStdout()
			for _, k := range a.svc.Keywords() {
				if strings.HasPrefix(strings.ToUpper(k), strings.ToUpper(prefix)) {
					fmt.Fprintln(out, k)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list keywords starting with this (case-insensitive)")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the element x method support matrix",
		Example: `  mopac-assistant export --out support.xlsx
  mopac-assistant export --out support.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if !a.svc.HasElements() {
				return a.unavailable(dataset.KindElements)
			}
			if !a.svc.HasMethods() {
				return a.unavailable(dataset.KindMethods)
			}
			m := a.svc.SupportMatrix()
			if err := export.WriteFile(out, m); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln(
				"wrote %d elements x %d methods to %s", len(m.Elements), len(m.Methods), out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which datasets loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			counts := map[dataset.Kind]int{
				dataset.KindElements: len(a.svc.Elements()),
				dataset.KindMethods:  len(a.svc.Methods()),
				dataset.KindKeywords: len(a.svc.Keywords()),
			}
			paths := map[dataset.Kind]string{
				dataset.KindElements: a.cfg.ElementsPath(),
				dataset.KindMethods:  a.cfg.MethodsPath(),
				dataset.KindKeywords: a.cfg.KeywordsPath(),
			}
			data := pterm.TableData{{"Dataset", "Status", "Records", "Path"}}
			for _, kind := range []dataset.Kind{dataset.KindElements, dataset.KindMethods, dataset.KindKeywords} {
				status := "ok"
				if p, ok := a.bundle.Problem(kind); ok {
					status = p.Reason()
				}
				data = append(data, []string{string(kind), status, strconv.Itoa(counts[kind]), paths[kind]})
			}
			return renderTable(cmd.OutOrStdout(), data)
		},
	}
}

func renderTable(w io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode json")
}
