package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"journal/internal/config"
	"journal/internal/console"
	"journal/internal/entry"
	"journal/internal/journal"
	"journal/internal/mcpserver"
	"journal/internal/prompts"
	"journal/internal/telegram"
)

var fileFlag string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "A personal journal with daily prompts",
		Long:  "journal keeps dated answers to reflective prompts in a plain text file.",
		// Running journal with no subcommand starts the interactive menu.
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if err := os.MkdirAll(filepath.Dir(cfg.JournalFilePath), 0o755); err != nil {
				return err
			}
			menu := console.New(journal.New(), sourceFor(cfg), cmd.InOrStdin(), cmd.OutOrStdout(), cfg.JournalFilePath)
			return menu.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "journal file (default $JOURNAL_FILE_PATH or data/journal.txt)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newBotCmd())
	rootCmd.AddCommand(newMCPCmd())
	return rootCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every entry of the journal file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			store := journal.New()
			res, err := store.LoadFromFile(cfg.JournalFilePath)
			var nf *journal.NotFoundError
			if errors.As(err, &nf) {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ File '%s' not found.\n", cfg.JournalFilePath)
				return nil
			}
			if err != nil {
				return err
			}
			for _, f := range res.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠️ Warning: could not load %v\n", f)
			}
			if store.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "📄 No entries to display. Start writing today!")
				return nil
			}
			for _, e := range store.List() {
				e.Display(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var date, prompt, response string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append one entry to the journal file",
		Long:  "add writes one line at the end of the journal file. Existing lines are left exactly as they are.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if err := os.MkdirAll(filepath.Dir(cfg.JournalFilePath), 0o755); err != nil {
				return err
			}
			if prompt == "" {
				var err error
				if prompt, err = sourceFor(cfg).Next(cmd.Context()); err != nil {
					return err
				}
			}
			if date == "" {
				date = time.Now().Format(entry.DateLayout)
			}
			if err := journal.AppendToFile(cfg.JournalFilePath, entry.New(date, prompt, response)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Entry added to '%s'.\n", cfg.JournalFilePath)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "entry date (default today)")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "prompt the entry answers (default a random one)")
	cmd.Flags().StringVarP(&response, "response", "r", "", "the response text")
	_ = cmd.MarkFlagRequired("response")
	return cmd
}

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print a journaling prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := sourceFor(loadConfig()).Next(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram journal bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			store, err := journal.Open(cfg.JournalFilePath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return telegram.Run(ctx, cfg, store, sourceFor(cfg))
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			store, err := journal.Open(cfg.JournalFilePath)
			if err != nil {
				return err
			}
			js := mcpserver.NewJournalServer(store, sourceFor(cfg), cfg.JournalFilePath)
			return mcpserver.Run(cmd.Context(), js, version)
		},
	}
}

// loadConfig reads the environment and applies CLI flag overrides.
func loadConfig() *config.Config {
	cfg := config.New()
	if fileFlag != "" {
		cfg.JournalFilePath = fileFlag
	}
	return cfg
}

func sourceFor(cfg *config.Config) prompts.Source {
	return prompts.FromConfig(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}
