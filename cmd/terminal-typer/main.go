// Package main provides the CLI entrypoint for terminal-typer.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/callum-jones19/terminal-typer/internal/config"
	"github.com/callum-jones19/terminal-typer/internal/engine"
	"github.com/callum-jones19/terminal-typer/internal/history"
	"github.com/callum-jones19/terminal-typer/internal/model"
	"github.com/callum-jones19/terminal-typer/internal/prompt"
	"github.com/callum-jones19/terminal-typer/internal/stats"
	"github.com/callum-jones19/terminal-typer/internal/tui"
)

const (
	defaultLang  = "en"
	defaultWords = 12
	defaultCaps  = 0.0
	defaultPunct = 0.0
)

const defaultPunctSet = ".,!?;:"

var (
	gameLang     string
	gameWords    int
	gameCaps     float64
	gamePunct    float64
	gamePunctSet string
	gameWordList string
	gameText     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "terminal-typer",
		Short:         "Terminal typing-speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().StringVar(&gameLang, "lang", defaultLang, "word list language code")
	rootCmd.Flags().IntVar(&gameWords, "words", defaultWords, "words per prompt")
	rootCmd.Flags().Float64Var(&gameCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&gamePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&gamePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().StringVar(&gameWordList, "wordlist", "", "path to a word list file (overrides --lang)")
	rootCmd.Flags().StringVar(&gameText, "text", "", "fixed prompt text instead of random words")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &gameLang, fileCfg.Game.Lang)
	applyIntConfig(cmd, "words", &gameWords, fileCfg.Game.Words)
	applyFloatConfig(cmd, "caps", &gameCaps, fileCfg.Game.CapsPct)
	applyFloatConfig(cmd, "punct", &gamePunct, fileCfg.Game.PunctPct)
	applyStringConfig(cmd, "punct-set", &gamePunctSet, fileCfg.Game.PunctSet)
	applyStringConfig(cmd, "wordlist", &gameWordList, fileCfg.Game.WordList)

	cfg := model.Config{
		Lang:     gameLang,
		Words:    gameWords,
		CapsPct:  gameCaps,
		PunctPct: gamePunct,
		PunctSet: gamePunctSet,
		WordList: gameWordList,
		Text:     gameText,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	hist := &history.History{}
	gameModel := tui.NewModel(source, engine.New(), hist)
	program := tea.NewProgram(gameModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if err := stats.WriteRecap(cmd.OutOrStdout(), hist.All()); err != nil {
		return fmt.Errorf("failed to write recap: %w", err)
	}
	return nil
}

func buildSource(cfg model.Config) (prompt.Source, error) {
	if cfg.Text != "" {
		return prompt.Static(cfg.Text), nil
	}
	words, err := prompt.ResolveWords(cfg.Lang, cfg.WordList, config.DefaultWordListPath(cfg.Lang))
	if err != nil {
		return nil, wordListLoadError(cfg.Lang, err)
	}
	return prompt.NewWordListSource(words, prompt.Options{
		Words:    cfg.Words,
		CapsPct:  cfg.CapsPct,
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	})
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word list languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs := map[string]string{
		prompt.EmbeddedLang: "built-in",
	}
	entries, err := os.ReadDir(config.DefaultWordListDir())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs[strings.TrimSuffix(name, ".txt")] = "installed"
	}

	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", name, langs[name]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# terminal-typer configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q              # Word list language code
# words = %d             # Words per prompt
# caps = %.2f            # Probability of capitalized first letter (0-1)
# punct = %.2f           # Punctuation probability per word (0-1)
# punct-set = %q   # Punctuation set
# wordlist = ""          # Path to a custom word list file
`,
		defaultLang,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func wordListLoadError(lang string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("language %q is not installed", lang),
		"List available languages: terminal-typer langs",
		fmt.Sprintf("Install one word per line at: %s", config.DefaultWordListPath(lang)),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
