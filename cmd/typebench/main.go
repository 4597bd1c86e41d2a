// Package main provides the CLI entrypoint for typebench.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typebench/internal/config"
	"github.com/verte-zerg/typebench/internal/corpus"
	"github.com/verte-zerg/typebench/internal/model"
	"github.com/verte-zerg/typebench/internal/session"
	"github.com/verte-zerg/typebench/internal/setup"
	"github.com/verte-zerg/typebench/internal/store"
	"github.com/verte-zerg/typebench/internal/tui"
)

const version = "0.1.0"

const (
	defaultTimeSeconds = 30
	defaultWordCount   = 20
	defaultDifficulty  = "medium"
)

var (
	benchMode       string
	benchTime       int
	benchWords      int
	benchDifficulty string
	benchWordList   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typebench",
		Short:         "Terminal typing benchmark",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runBenchCmd,
	}

	rootCmd.Flags().StringVar(&benchMode, "mode", "", "session mode: time, words, or quote (default: interactive setup)")
	rootCmd.Flags().IntVar(&benchTime, "time", defaultTimeSeconds, "time limit in seconds for time mode")
	rootCmd.Flags().IntVar(&benchWords, "words", defaultWordCount, "word count for words mode")
	rootCmd.Flags().StringVar(&benchDifficulty, "difficulty", defaultDifficulty, "difficulty: easy, medium, or hard")
	rootCmd.Flags().StringVar(&benchWordList, "wordlist", "", "path to a custom word list (one word per line)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runBenchCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typebench requires an interactive terminal")
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &benchMode, fileCfg.Session.Mode)
	applyIntConfig(cmd, "time", &benchTime, fileCfg.Session.Time)
	applyIntConfig(cmd, "words", &benchWords, fileCfg.Session.Words)
	applyStringConfig(cmd, "difficulty", &benchDifficulty, fileCfg.Session.Difficulty)
	applyStringConfig(cmd, "wordlist", &benchWordList, fileCfg.Session.WordList)

	cfg, err := resolveSessionConfig()
	if err != nil {
		if errors.Is(err, setup.ErrAborted) {
			return nil
		}
		return err
	}

	words := corpus.DefaultWords()
	if benchWordList != "" {
		words, err = corpus.LoadWords(benchWordList)
		if err != nil {
			return fmt.Errorf("failed to load word list %s: %w", benchWordList, err)
		}
	}

	st, err := store.Open(config.DefaultQuoteDBPath())
	if err != nil {
		return fmt.Errorf("failed to open quote db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close quote db: %v\n", cerr)
		}
	}()

	provider := corpus.NewProvider(words, st)
	target, err := provider.TextFor(context.Background(), cfg)
	if err != nil {
		if errors.Is(err, corpus.ErrEmptyCorpus) {
			return fmt.Errorf("no text available for %s mode at %s difficulty", cfg.Mode, cfg.Difficulty)
		}
		return fmt.Errorf("failed to select target text: %w", err)
	}

	sess, err := session.New(cfg, target)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(sess, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveSessionConfig builds the session config from flags and file config,
// falling back to the interactive setup flow when no mode was given.
func resolveSessionConfig() (model.Config, error) {
	difficulty, ok := model.ParseDifficulty(strings.ToLower(benchDifficulty))
	if !ok {
		return model.Config{}, fmt.Errorf("unknown difficulty %q (easy, medium, hard)", benchDifficulty)
	}
	defaults := model.Config{
		Mode:       model.ModeTime,
		TimeLimit:  time.Duration(benchTime) * time.Second,
		WordCount:  benchWords,
		Difficulty: difficulty,
	}
	if benchMode == "" {
		return setup.Run(defaults)
	}
	mode, ok := model.ParseMode(strings.ToLower(benchMode))
	if !ok {
		return model.Config{}, fmt.Errorf("unknown mode %q (time, words, quote)", benchMode)
	}
	defaults.Mode = mode
	return defaults, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typebench configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# mode = "time"        # Session mode: time, words, quote (unset: interactive setup)
# time = %d            # Time limit in seconds for time mode
# words = %d           # Word count for words mode
# difficulty = %q      # Difficulty: easy, medium, hard
# wordlist = ""        # Path to a custom word list (one word per line)
`,
		defaultTimeSeconds,
		defaultWordCount,
		defaultDifficulty,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
