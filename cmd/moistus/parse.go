package main

import (
	"github.com/spf13/cobra"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/content"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/task"
)

// parseCmd implements 'moistus parse' and its per-node-type subcommands.
func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse node content by node type",
	}
	cmd.AddCommand(
		parseTaskCmd(),
		parseTextCmd(),
		parseAnnotationCmd(),
		parseQuestionCmd(),
		parseCodeCmd(),
		parseImageCmd(),
		parseResourceCmd(),
	)
	return cmd
}

func parseTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "task <input>",
		Short: "Parse task node input (checkboxes and inline patterns)",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			printOutput(formatter.FormatTaskData(task.ParseInput(args[0])))
		},
	}
}

func parseTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <input>",
		Short: "Parse styled text input",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			printOutput(formatter.FormatText(content.ParseText(args[0])))
		},
	}
}

func parseAnnotationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotation <input>",
		Short: "Parse annotation input",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			printOutput(formatter.FormatAnnotation(content.ParseAnnotation(args[0])))
		},
	}
}

func parseQuestionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "question <input>",
		Short: "Parse question input",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			printOutput(formatter.FormatQuestion(content.ParseQuestion(args[0])))
		},
	}
}

func parseCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code <input>",
		Short: "Parse code input (fenced blocks and lang hints)",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			printOutput(formatter.FormatCode(content.ParseCode(args[0])))
		},
	}
}

func parseImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image <input>",
		Short: "Parse image input (markdown image or bare URL)",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			printOutput(formatter.FormatImage(content.ParseImage(args[0])))
		},
	}
}

func parseResourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resource <input>",
		Short: "Parse resource input (markdown link or bare URL)",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			printOutput(formatter.FormatResource(content.ParseResource(args[0])))
		},
	}
}
