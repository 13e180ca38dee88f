// Package main provides the CLI entrypoint for fastcode.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/fastcode/internal/auth"
	"github.com/verte-zerg/fastcode/internal/authui"
	"github.com/verte-zerg/fastcode/internal/catalog"
	"github.com/verte-zerg/fastcode/internal/config"
	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/leaderboard"
	"github.com/verte-zerg/fastcode/internal/leaderui"
	"github.com/verte-zerg/fastcode/internal/logging"
	"github.com/verte-zerg/fastcode/internal/model"
	"github.com/verte-zerg/fastcode/internal/prefs"
	"github.com/verte-zerg/fastcode/internal/session"
	"github.com/verte-zerg/fastcode/internal/store"
	"github.com/verte-zerg/fastcode/internal/theme"
	"github.com/verte-zerg/fastcode/internal/tui"
)

const maxDuration = 600

var (
	gameSnippet  string
	gameDuration int
	gameTheme    string
	snippetsDir  string
	logLevel     string
	logFile      string

	loginTelegram bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fastcode",
		Short:         "Code typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().StringVar(&gameSnippet, "snippet", "", "snippet ID to start with (default: first)")
	rootCmd.Flags().IntVar(&gameDuration, "duration", session.DefaultDuration, "session length in seconds")
	rootCmd.PersistentFlags().StringVar(&gameTheme, "theme", theme.Default, "color theme ("+strings.Join(theme.Names, ", ")+")")
	rootCmd.PersistentFlags().StringVar(&snippetsDir, "snippets-dir", config.DefaultSnippetsDir(), "directory with user snippet YAML files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file (default: data dir for TUI screens, stderr otherwise)")

	rootCmd.AddCommand(newTopCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newSnippetsCmd())
	rootCmd.AddCommand(newLocaleCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// env holds the services shared by every command.
type env struct {
	cfg    model.Config
	logger *log.Logger
	prefs  *prefs.Preferences
	theme  theme.Theme

	logCloser io.Closer
	store     *store.Store
}

// openEnv merges the config file into unset flags, then opens the logger and
// the preference store. A store that cannot be opened is logged and the
// preferences stay in memory.
func openEnv(cmd *cobra.Command, interactive bool) (*env, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "snippet", &gameSnippet, fileCfg.Game.Snippet)
	applyIntConfig(cmd, "duration", &gameDuration, fileCfg.Game.Duration)
	applyStringConfig(cmd, "theme", &gameTheme, fileCfg.Game.Theme)
	applyStringConfig(cmd, "snippets-dir", &snippetsDir, fileCfg.Game.SnippetsDir)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := model.Config{
		SnippetID:   strings.TrimSpace(gameSnippet),
		Duration:    gameDuration,
		Theme:       gameTheme,
		SnippetsDir: snippetsDir,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	th, err := theme.ByName(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("--theme: %w", err)
	}

	path := logFile
	if path == "" && interactive {
		path = config.DefaultLogPath()
	}
	logger, closer, err := logging.Open(path, logLevel)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger, theme: th, logCloser: closer}
	var backend prefs.Backend
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logger.Warn("preferences will not be saved", "err", err)
	} else {
		e.store = st
		backend = st
	}
	e.prefs = prefs.Load(cmd.Context(), backend, logger)
	e.cfg.Locale = string(e.prefs.Locale())
	return e, nil
}

func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("failed to close db", "err", err)
		}
	}
	if err := e.logCloser.Close(); err != nil {
		logErrf("failed to close log: %v\n", err)
	}
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	snippets, err := catalog.Load(e.cfg.SnippetsDir)
	if err != nil {
		return fmt.Errorf("failed to load snippets: %w", err)
	}
	index, err := resolveSnippetIndex(snippets, e.cfg.SnippetID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	updates, err := catalog.Watch(ctx, e.cfg.SnippetsDir, e.logger)
	if err != nil {
		e.logger.Warn("snippet directory is not watched", "err", err)
	}

	m, err := tui.NewModel(tui.Options{
		Catalog:      snippets,
		Duration:     e.cfg.Duration,
		SnippetIndex: index,
		Theme:        e.theme,
		Prefs:        e.prefs,
		Logger:       e.logger,
		Updates:      updates,
	})
	if err != nil {
		return err
	}
	e.logger.Info("starting game", "snippets", len(snippets), "duration", e.cfg.Duration, "locale", e.cfg.Locale)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolveSnippetIndex(snippets []model.CodeSnippet, id string) (int, error) {
	if id == "" {
		return 0, nil
	}
	idx := catalog.IndexOf(snippets, id)
	if idx < 0 {
		return 0, fmt.Errorf("unknown snippet %q\nRun: fastcode snippets", id)
	}
	return idx, nil
}

func newTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the top players",
		Args:  cobra.NoArgs,
		RunE:  runTopCmd,
	}
}

func runTopCmd(cmd *cobra.Command, _ []string) error {
	interactive := isTerminal(os.Stdout)
	e, err := openEnv(cmd, interactive)
	if err != nil {
		return err
	}
	defer e.Close()

	entries := leaderboard.Entries()
	if !interactive {
		return leaderboard.Render(cmd.OutOrStdout(), entries, i18n.Translator{Locale: e.prefs.Locale()})
	}
	program := tea.NewProgram(leaderui.NewModel(entries, e.prefs, e.theme), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run leaderboard TUI: %w", err)
	}
	return nil
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in (simulated)",
		Args:  cobra.NoArgs,
		RunE:  runLoginCmd,
	}
	cmd.Flags().BoolVar(&loginTelegram, "telegram", false, "print the Telegram login widget embed")
	return cmd
}

func runLoginCmd(cmd *cobra.Command, _ []string) error {
	if loginTelegram {
		return writeTelegramWidget(cmd)
	}
	return runAuthForm(cmd, authui.Login)
}

func writeTelegramWidget(cmd *cobra.Command) error {
	e, err := openEnv(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	tr := i18n.Translator{Locale: e.prefs.Locale()}
	widget := auth.DefaultTelegramWidget()
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s\n%s: %s\n%s\n",
		tr.T("telegram.login.title"),
		tr.T("telegram.login.button"), widget.AuthURL,
		widget.ScriptTag(),
	); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSignupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Create an account (simulated)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAuthForm(cmd, authui.Signup)
		},
	}
}

func runAuthForm(cmd *cobra.Command, mode authui.Mode) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	program := tea.NewProgram(authui.NewModel(mode, e.prefs, e.theme), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run auth TUI: %w", err)
	}
	return nil
}

func newSnippetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snippets",
		Short: "List available snippets",
		Args:  cobra.NoArgs,
		RunE:  runSnippetsCmd,
	}
}

func runSnippetsCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	snippets, err := catalog.Load(e.cfg.SnippetsDir)
	if err != nil {
		return fmt.Errorf("failed to load snippets: %w", err)
	}
	return writeSnippets(cmd.OutOrStdout(), snippets)
}

func writeSnippets(w io.Writer, snippets []model.CodeSnippet) error {
	width := 0
	for _, s := range snippets {
		if len(s.ID) > width {
			width = len(s.ID)
		}
	}
	for _, s := range snippets {
		if _, err := fmt.Fprintf(w, "%-*s  %s %-10s  %s\n", width, s.ID, catalog.Icon(s.Language), s.Language, s.Title); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newLocaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locale [code]",
		Short: "Show or set the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLocaleCmd,
	}
}

func runLocaleCmd(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	if len(args) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), e.prefs.Locale())
		return err
	}
	locale, ok := i18n.Parse(args[0])
	if !ok {
		return fmt.Errorf("unknown locale %q (available: %s)", args[0], localeCodes())
	}
	e.prefs.SetLocale(cmd.Context(), locale)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), locale)
	return err
}

func localeCodes() string {
	codes := make([]string, 0, len(i18n.Options))
	for _, opt := range i18n.Options {
		codes = append(codes, string(opt.Value))
	}
	return strings.Join(codes, ", ")
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
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fastcode configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# snippet = "js-recursion"   # Snippet ID to start with
# duration = %d              # Session length in seconds
# theme = %q              # One of: %s
# snippets-dir = %q

[log]
# level = %q               # debug, info, warn, error
# file = %q
`,
		session.DefaultDuration,
		theme.Default,
		strings.Join(theme.Names, ", "),
		config.DefaultSnippetsDir(),
		logging.DefaultLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Duration <= 0 || cfg.Duration > maxDuration {
		return fmt.Errorf("--duration must be between 1 and %d", maxDuration)
	}
	if strings.TrimSpace(cfg.SnippetsDir) == "" {
		return fmt.Errorf("--snippets-dir must not be empty")
	}
	return nil
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
