package commands

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agiangrant/picklist"
	"github.com/agiangrant/picklist/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo [option...]",
	Short: "Pick an option interactively in the terminal",
	Long: `Demo hosts a pick list in the terminal. Type to filter the options,
use the arrow keys or the mouse to pick one. The picked option is printed
on exit.

Options are read from the arguments, or one per line from stdin when no
arguments are given.

Examples:
  picklist demo apple banana cherry
  ls | picklist demo --clipboard=system`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&clipboardMode, "clipboard", "memory", "clipboard: memory or system")
	demoCmd.Flags().StringVar(&clipboardText, "clipboard-text", "", "initial memory clipboard content")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	log, err := commandLogger(cmd, "demo")
	if err != nil {
		return err
	}

	config, err := picklist.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// The picked option goes to stdout, so the terminal UI draws on stderr.
	opts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
	}

	options := args
	if len(options) == 0 {
		options, err = readOptions(cmd)
		if err != nil {
			return err
		}
		// Stdin carried the options; keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	clipboard, err := newClipboard(clipboardMode, clipboardText, log)
	if err != nil {
		return err
	}
	// The model swaps in cell measurement.
	env, err := config.Env(nil, clipboard, log)
	if err != nil {
		return err
	}

	model, err := tui.New(config, options, env)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, opts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}

	if result, ok := final.(tui.Model).Result(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}

// readOptions reads non-empty lines from the command's input.
func readOptions(cmd *cobra.Command) ([]string, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, cmd.InOrStdin()); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	var options []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			options = append(options, line)
		}
	}
	return options, nil
}
