package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agiangrant/picklist"
	"github.com/agiangrant/picklist/control"
	"github.com/agiangrant/picklist/event"
	"github.com/agiangrant/picklist/internal/platform"
	"github.com/agiangrant/picklist/textinput"
)

var (
	measureMode   string
	clipboardMode string
	clipboardText string
	watch         bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>",
	Short: "Replay a scripted event sequence against a pick list",
	Long: `Replay feeds the events of a TOML script to a pick list control and its
dropdown overlay, printing every emitted message followed by the final state.

Examples:
  picklist replay testdata/backspace.toml
  picklist replay --measure=cell --clipboard=system script.toml
  picklist replay --watch script.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&measureMode, "measure", "font", "text measurement: font or cell")
	replayCmd.Flags().StringVar(&clipboardMode, "clipboard", "memory", "clipboard: memory or system")
	replayCmd.Flags().StringVar(&clipboardText, "clipboard-text", "", "initial memory clipboard content")
	replayCmd.Flags().BoolVar(&watch, "watch", false, "replay again whenever the script or config changes")
	rootCmd.AddCommand(replayCmd)
}

// replayEpoch anchors scripted press times.
var replayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func runReplay(cmd *cobra.Command, args []string) error {
	log, err := commandLogger(cmd, "replay")
	if err != nil {
		return err
	}

	if !watch {
		return replayFile(cmd.OutOrStdout(), args[0], log)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	config := configPath
	if config == "" {
		config = picklist.DefaultConfigFile
	}
	return watchFiles(ctx, []string{args[0], config}, log, func() {
		fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n", args[0])
		if err := replayFile(cmd.OutOrStdout(), args[0], log); err != nil {
			log.Error().Err(err).Msg("replay failed")
		}
	})
}

// replayFile loads the config and the script at path and replays it.
func replayFile(out io.Writer, path string, log *zerolog.Logger) error {
	config, err := picklist.LoadConfig(configPath)
	if err != nil {
		return err
	}

	script, err := LoadScript(path)
	if err != nil {
		return err
	}

	measurer, err := newMeasurer(measureMode)
	if err != nil {
		return err
	}
	clipboard, err := newClipboard(clipboardMode, clipboardText, log)
	if err != nil {
		return err
	}

	env, err := config.Env(measurer, clipboard, log)
	if err != nil {
		return err
	}

	log.Debug().
		Str("script", path).
		Int("events", len(script.Events)).
		Msg("replaying")

	_, err = replay(out, script, config, env)
	return err
}

func newMeasurer(mode string) (textinput.Measurer, error) {
	switch mode {
	case "font":
		m, err := platform.NewFaceMeasurer()
		if err != nil {
			return nil, err
		}
		return m, nil
	case "cell":
		return platform.CellMeasurer{Width: 8}, nil
	default:
		return nil, fmt.Errorf("unknown measure mode %q", mode)
	}
}

func newClipboard(mode, initial string, logger *zerolog.Logger) (control.Clipboard, error) {
	switch mode {
	case "memory":
		clip := &control.MemoryClipboard{}
		if initial != "" {
			clip.Write(initial)
		}
		return clip, nil
	case "system":
		clip := platform.NewSystemClipboard(logger)
		if !clip.Available() {
			return nil, fmt.Errorf("system clipboard is not available")
		}
		return clip, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", mode)
	}
}

// replay runs script against a pick list built from config and writes the
// emitted messages and final state to out.
func replay(out io.Writer, script *Script, config picklist.Config, env control.Env) (*control.State[string], error) {
	pl, err := picklist.New(config, script.Options)
	if err != nil {
		return nil, err
	}
	if script.Selected != "" {
		selected := script.Selected
		pl.Selected = &selected
	}

	state := control.NewState[string](script.Text)
	if script.Focused {
		state.Focus()
		state.MoveCursorToEnd()
	}

	events, err := script.InputEvents(replayEpoch)
	if err != nil {
		return nil, err
	}

	bounds := script.ControlBounds()
	overlay := control.NewOverlay(pl)

	for _, ev := range events {
		// The overlay sits above the control and sees events first.
		overlay.Update(state.Menu(), ev, bounds)

		_, msgs := pl.Update(state, ev, bounds, env)
		for _, msg := range msgs {
			switch msg.Kind {
			case control.MessageChanged:
				fmt.Fprintf(out, "changed %q\n", msg.Text)
			case control.MessageSelected:
				option := msg.Option
				pl.Selected = &option
				state.SetText(pl.OptionLabel(option))
				state.MoveCursorToEnd()
				fmt.Fprintf(out, "selected %q\n", option)
			case control.MessageSubmit:
				fmt.Fprintln(out, "submit")
			}
		}
	}

	writeState(out, pl, state, bounds, env)
	return state, nil
}

func writeState(out io.Writer, pl *control.PickList[string], state *control.State[string], bounds event.Bounds, env control.Env) {
	cursor := state.Cursor().State(state.Value())

	fmt.Fprintf(out, "text: %q\n", state.Text())
	if cursor.IsSelection() {
		fmt.Fprintf(out, "selection: %d..%d %q\n", cursor.Start, cursor.End, state.SelectedText())
	} else {
		fmt.Fprintf(out, "cursor: %d\n", cursor.Index())
	}
	fmt.Fprintf(out, "open: %t\n", state.IsOpen())
	fmt.Fprintf(out, "focused: %t\n", state.IsFocused())
	fmt.Fprintf(out, "offset: %g\n", pl.ScrollOffset(state, bounds, env))
}
