// Package cli is the interpreter front end: it dispatches between
// script files, piped input, one-liners and the interactive REPL, and
// owns everything the core deliberately leaves out (config, terminal
// handling, error reporting).
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/joy/internal/config"
	"github.com/funvibe/joy/internal/evaluator"
)

// Config is the optional per-user YAML configuration.
type Config struct {
	RecursionLimit int      `yaml:"recursion_limit"`
	Prompt         string   `yaml:"prompt"`
	HistoryFile    string   `yaml:"history_file"`
	Prelude        []string `yaml:"prelude"`
}

func defaultConfig() Config {
	return Config{
		RecursionLimit: config.DefaultRecursionLimit,
		Prompt:         config.DefaultPrompt,
		HistoryFile:    config.DefaultHistoryFile,
	}
}

// LoadConfig reads the YAML config from path, or from the default
// location when path is empty. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, config.ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = config.DefaultRecursionLimit
	}
	if cfg.Prompt == "" {
		cfg.Prompt = config.DefaultPrompt
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = config.DefaultHistoryFile
	}
	return cfg, nil
}

const usage = `Usage: joy [options] [script%s]

Options:
  -e EXPR          evaluate EXPR and exit
  --config PATH    load configuration from PATH
  --dynamic        run with the relaxed (untagged) stack
  -h, --help       show this help

With no script and a terminal on stdin, an interactive session starts.
`

// Run executes the command line and returns the process exit code.
func Run(args []string) int {
	var (
		expr       string
		configPath string
		dynamic    bool
		script     string
	)

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-e", "--eval":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -e requires an argument")
				return 2
			}
			i++
			expr = args[i]
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --config requires an argument")
				return 2
			}
			i++
			configPath = args[i]
		case "--dynamic":
			dynamic = true
		case "-h", "--help":
			fmt.Printf(usage, config.SourceFileExt)
			return 0
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Error: unknown option %s\n", arg)
				return 2
			}
			if script != "" {
				fmt.Fprintln(os.Stderr, "Error: only one script may be given")
				return 2
			}
			script = arg
		}
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	eval := newEvaluator(dynamic, cfg)
	if err := runPrelude(eval, cfg.Prelude); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case expr != "":
		if err := eval.Run(expr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case script != "":
		return runFile(eval, script)
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		return RunRepl(eval, cfg)
	default:
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := eval.Run(string(source)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
}

func newEvaluator(dynamic bool, cfg Config) *evaluator.Evaluator {
	var e *evaluator.Evaluator
	if dynamic {
		e = evaluator.NewDynamic()
	} else {
		e = evaluator.New()
	}
	e.MaxDepth = cfg.RecursionLimit
	return e
}

// runPrelude executes each prelude file in order; definitions persist
// into the session.
func runPrelude(e *evaluator.Evaluator, files []string) error {
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("prelude: %w", err)
		}
		if err := e.Run(string(source)); err != nil {
			return fmt.Errorf("prelude %s: %w", path, err)
		}
	}
	return nil
}

func runFile(e *evaluator.Evaluator, path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := e.Run(string(source)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
