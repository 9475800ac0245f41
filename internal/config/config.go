package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/uwmips-editor/internal/app"
	"github.com/atomicstack/uwmips-editor/internal/module"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	// List prints the registered modes and themes instead of starting the UI.
	List bool
}

const (
	envWidth          = "UWMIPS_EDITOR_WIDTH"
	envHeight         = "UWMIPS_EDITOR_HEIGHT"
	envMode           = "UWMIPS_EDITOR_MODE"
	envTheme          = "UWMIPS_EDITOR_THEME"
	envBlockScrolling = "UWMIPS_EDITOR_BLOCK_SCROLLING"
	envTabSize        = "UWMIPS_EDITOR_TAB_SIZE"
	envGrammarDir     = "UWMIPS_EDITOR_GRAMMAR_DIR"
	envModule         = "UWMIPS_EDITOR_MODULE"
	envModuleDelay    = "UWMIPS_EDITOR_MODULE_DELAY"
	envModuleTimeout  = "UWMIPS_EDITOR_MODULE_TIMEOUT"
	envShowFooter     = "UWMIPS_EDITOR_FOOTER"
	envTrace          = "UWMIPS_EDITOR_TRACE"
	envLogFile        = "UWMIPS_EDITOR_LOG_FILE"
)

const (
	DefaultMode    = "mips_assembler"
	DefaultTheme   = "monokai"
	DefaultTabSize = 4
	MaxTabSize     = 16
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("uwmips-editor", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired height in rows (0 uses terminal height)")
	mode := fs.String("mode", envOrDefault(env, envMode, DefaultMode), "syntax mode applied to the buffer")
	theme := fs.String("theme", envOrDefault(env, envTheme, DefaultTheme), "editor theme")
	blockScrolling := fs.Bool("block-scrolling", envOrBool(env, envBlockScrolling, true), "keep the viewport still when the buffer is replaced")
	tabSize := fs.Int("tab-size", envOrInt(env, envTabSize, DefaultTabSize), "spaces per tab")
	grammarDir := fs.String("grammar-dir", envOrDefault(env, envGrammarDir, ""), "directory of extra YAML grammars")
	moduleSource := fs.String("module", envOrDefault(env, envModule, module.SourceBuiltin), `module to acquire: "builtin" or an executable command line`)
	moduleDelay := fs.Duration("module-delay", envOrDuration(env, envModuleDelay, 0), "simulated load time of the builtin module")
	moduleTimeout := fs.Duration("module-timeout", envOrDuration(env, envModuleTimeout, module.DefaultHandshakeTimeout), "handshake timeout for executable modules")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the footer hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	list := fs.Bool("list", false, "print registered modes and themes, then exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:          *width,
			Height:         *height,
			Mode:           *mode,
			Theme:          *theme,
			BlockScrolling: *blockScrolling,
			TabSize:        *tabSize,
			GrammarDir:     *grammarDir,
			Module:         *moduleSource,
			ModuleDelay:    *moduleDelay,
			ModuleTimeout:  *moduleTimeout,
			ShowFooter:     *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			List: *list,
		},
		Flags: map[string]string{
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"mode":           *mode,
			"theme":          *theme,
			"blockScrolling": strconv.FormatBool(*blockScrolling),
			"tabSize":        strconv.Itoa(*tabSize),
			"grammarDir":     *grammarDir,
			"module":         *moduleSource,
			"moduleDelay":    moduleDelay.String(),
			"moduleTimeout":  moduleTimeout.String(),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
			"list":           strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values no component can work with. Unknown modes and
// themes are left to the editor, which knows the registries.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.TabSize < 1 || a.TabSize > MaxTabSize {
		return fmt.Errorf("tab-size must be between 1 and %d (got %d)", MaxTabSize, a.TabSize)
	}
	if strings.TrimSpace(a.Module) == "" {
		return fmt.Errorf("module must not be empty")
	}
	if a.ModuleDelay < 0 {
		return fmt.Errorf("module-delay must be >= 0 (got %s)", a.ModuleDelay)
	}
	if a.ModuleTimeout <= 0 {
		return fmt.Errorf("module-timeout must be > 0 (got %s)", a.ModuleTimeout)
	}
	return nil
}
