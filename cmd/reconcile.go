package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"admin-console/core/logger"
	"admin-console/core/toolbar"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile toolbar command
	toolbarInputPath string
	toolbarJSON      bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run console reconciliations offline",
	Long:  `Runs the console reconciliation routines on recorded input, without a server.`,
}

// toolbarReconcileCmd reconciles a recorded toolbar input file.
var toolbarReconcileCmd = &cobra.Command{
	Use:   "toolbar",
	Short: "Reconcile a toolbar against declared buttons",
	Long: `Reconciles a prior toolbar state with the buttons declared by a render.

The input file holds the declared buttons, the ajax registrations, the prior
state, whether the render was a full page and the existence of registered
elements:

  {
    "declared": [{"id": "save", "origin": "toolbar"}, {"id": ""}],
    "registrations": [{"id": "save", "position": 0}],
    "prior": [{"id": "new"}],
    "authoritative": false,
    "present": {"preview": false}
  }

Examples:
  # Log a report
  reconcile toolbar --input render.json

  # Print the full result as JSON
  reconcile toolbar --input render.json --json`,
	RunE: runToolbarReconcile,
}

func init() {
	reconcileCmd.AddCommand(toolbarReconcileCmd)

	toolbarReconcileCmd.Flags().StringVarP(&toolbarInputPath, "input", "i", "", "Path of the JSON input file (- reads stdin)")
	toolbarReconcileCmd.Flags().BoolVar(&toolbarJSON, "json", false, "Print the result as JSON")
	_ = toolbarReconcileCmd.MarkFlagRequired("input")

	RootCmd.AddCommand(reconcileCmd)
}

// toolbarInput is the file format of the toolbar command.
type toolbarInput struct {
	Declared      []toolbar.Button       `json:"declared"`
	Registrations []toolbar.Registration `json:"registrations"`
	Prior         toolbar.State          `json:"prior"`
	Authoritative bool                   `json:"authoritative"`
	Present       map[string]bool        `json:"present"`
}

// readToolbarInput decodes a toolbar input file.
func readToolbarInput(r io.Reader) (toolbar.Input, error) {
	var in toolbarInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return toolbar.Input{}, fmt.Errorf("failed to decode toolbar input: %w", err)
	}
	return toolbar.Input{
		Declared:      in.Declared,
		Registrations: in.Registrations,
		Prior:         in.Prior,
		Authoritative: in.Authoritative,
		Presence:      toolbar.PresenceMap(in.Present),
	}, nil
}

func runToolbarReconcile(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if toolbarInputPath != "-" {
		f, err := os.Open(toolbarInputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	in, err := readToolbarInput(r)
	if err != nil {
		return err
	}
	res := toolbar.Reconcile(in)

	if toolbarJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	l, err := logger.New(&logger.Config{Level: "info", Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	printToolbarReport(l, res)
	return nil
}

// printToolbarReport prints a formatted reconciliation report using logger.
func printToolbarReport(l *zap.Logger, res toolbar.Result) {
	s := res.Summary

	l.Info("Toolbar reconciliation report",
		zap.Bool("changed", res.Changed),
		zap.Bool("full", s.Full),
		zap.Int("added", s.Added),
		zap.Int("removed", s.Removed),
		zap.Int("moved", s.Moved),
		zap.Int("refreshed", s.Refreshed),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("collapsed", s.Collapsed),
		zap.Strings("state", stateLabels(res.State)),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := min(len(res.Actions), 5)
	for _, action := range res.Actions[:maxShow] {
		l.Info("Action",
			zap.String("type", string(action.Type)),
			zap.String("id", action.ID),
			zap.Int("from", action.From),
			zap.Int("to", action.To),
			zap.String("reason", action.Reason),
		)
	}
	if len(res.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(res.Actions)-maxShow))
	}

	for _, note := range res.Ignored {
		l.Warn("Ignored input", zap.String("note", note))
	}
}

// stateLabels renders a toolbar as ids with "|" for separators.
func stateLabels(state toolbar.State) []string {
	labels := make([]string, len(state))
	for i, b := range state {
		if b.IsSeparator() {
			labels[i] = "|"
			continue
		}
		labels[i] = b.ID
	}
	return labels
}
