package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/tui"
	"github.com/spf13/cobra"
)

func newWhatIfCmd(opts *options) *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Adjust inputs interactively and watch the projection update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := in.resolve(cmd, opts.prefs.LastInput.Input())
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.NewWhatIf(input, config.RememberInput), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}
	in.register(cmd)
	return cmd
}
