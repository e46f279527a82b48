package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/command"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/config"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/output"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/search"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/tui"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	configPath string
	formatter  output.Formatter
	cfg        config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moistus",
		Short: "Inline syntax and command engine for mind-map nodes",
		Long:  "moistus - parse inline micro-syntax and dispatch editor commands for mind-map nodes.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
			loaded, err := config.Load(configFile())
			if err != nil {
				// Invalid config still yields usable defaults; warn and go on.
				os.Stderr.WriteString(err.Error() + "\n")
			}
			cfg = loaded
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	rootCmd.AddCommand(
		parseCmd(),
		triggerCmd(),
		switchCmd(),
		commandsCmd(),
		execCmd(),
		refCmd(),
		tuiCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "moistus.yaml"
	}
	return filepath.Join(home, ".config", "moistus", "config.yaml")
}

// newRegistry builds the default command set backed by the configured search
// endpoint.
func newRegistry() *command.Registry {
	client := search.New(cfg.API.BaseURL, search.Options{
		Debounce: cfg.Search.Debounce(),
		CacheTTL: cfg.Search.CacheTTL(),
		Timeout:  cfg.Search.Timeout(),
	})

	reg := command.NewRegistry()
	command.RegisterDefaults(reg, func(ctx context.Context, query string) ([]command.RefMatch, error) {
		refs, err := client.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		matches := make([]command.RefMatch, len(refs))
		for i, r := range refs {
			matches[i] = command.RefMatch{
				NodeID:   r.NodeID,
				Content:  r.Content,
				MapID:    r.MapID,
				MapTitle: r.MapTitle,
			}
		}
		return matches, nil
	})
	return reg
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// triggerCmd implements 'moistus trigger'.
func triggerCmd() *cobra.Command {
	var cursor int
	cmd := &cobra.Command{
		Use:   "trigger <text>",
		Short: "Detect a command trigger at the cursor",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			text := args[0]
			if cursor < 0 {
				cursor = len(text)
			}
			t := newRegistry().DetectTrigger(text, cursor)
			printOutput(formatter.FormatTrigger(t))
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", -1, "Cursor position (defaults to end of text)")
	return cmd
}

// switchCmd implements 'moistus switch'.
func switchCmd() *cobra.Command {
	var cursor int
	cmd := &cobra.Command{
		Use:   "switch <text>",
		Short: "Detect an inline node-type switch",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			text := args[0]
			if cursor < 0 {
				cursor = len(text)
			}
			res := command.ProcessNodeTypeSwitch(text, cursor)
			printOutput(formatter.FormatSwitch(res))
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", -1, "Cursor position (defaults to end of text)")
	return cmd
}

// commandsCmd implements 'moistus commands'.
func commandsCmd() *cobra.Command {
	var query, category, triggerType, prefix string
	var limit int
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List or search registered commands",
		Run: func(_ *cobra.Command, _ []string) {
			reg := newRegistry()
			cmds := reg.Search(command.SearchFilter{
				Query:          query,
				Category:       category,
				TriggerType:    command.TriggerType(triggerType),
				TriggerPattern: prefix,
				Limit:          limit,
			})
			printOutput(formatter.FormatCommandList(cmds))
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Match label, description, keywords or trigger")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&triggerType, "type", "", "Filter by trigger type (node-type, slash)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Filter by trigger prefix")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")
	return cmd
}

// execCmd implements 'moistus exec'.
func execCmd() *cobra.Command {
	var text string
	var cursor, selStart, selEnd int
	cmd := &cobra.Command{
		Use:   "exec <trigger-or-id>",
		Short: "Execute a command against a text buffer",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			reg := newRegistry()
			key := args[0]
			if cursor < 0 {
				cursor = len(text)
			}

			ctx := command.Context{
				CurrentText:    text,
				CursorPosition: cursor,
				TriggerText:    key,
			}
			if t := reg.DetectTrigger(text, cursor); t != nil && t.Text == key {
				ctx.TriggerPosition = t.Start
			} else {
				ctx.TriggerPosition = cursor
				ctx.TriggerText = ""
			}
			if selEnd > selStart {
				ctx.Selection = &command.Selection{Start: selStart, End: selEnd}
			}

			res, err := command.NewExecutor(reg).Execute(key, ctx)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatResult(res))
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Current text buffer")
	cmd.Flags().IntVar(&cursor, "cursor", -1, "Cursor position (defaults to end of text)")
	cmd.Flags().IntVar(&selStart, "sel-start", 0, "Selection start")
	cmd.Flags().IntVar(&selEnd, "sel-end", 0, "Selection end")
	return cmd
}

// refCmd implements 'moistus ref'.
func refCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ref <query>",
		Short: "Search nodes across maps",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			client := search.New(cfg.API.BaseURL, search.Options{
				CacheTTL: cfg.Search.CacheTTL(),
				Timeout:  cfg.Search.Timeout(),
			})
			refs, _ := client.Search(context.Background(), args[0])
			if len(refs) == 0 {
				printOutput(formatter.FormatMessage("No matches."))
				return
			}
			for _, r := range refs {
				printOutput(formatter.FormatMessage(r.MapTitle + ": " + r.Content))
			}
		},
	}
}

// tuiCmd implements 'moistus tui'.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive command playground",
		Run: func(_ *cobra.Command, _ []string) {
			if err := tui.Run(newRegistry()); err != nil {
				printError(err)
			}
		},
	}
}
