package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/joy/internal/evaluator"
)

const banner = `Joy - a concatenative stack language
Type 'quit' to exit, '.help' for commands.`

const replHelp = `REPL commands:
  quit, exit   - Exit the session
  .s, .stack   - Show the stack with types
  .c, .clear   - Clear the stack
  .w, .words   - List available words
  .w PATTERN   - List words matching PATTERN
  .h, .help    - Show this help
  .help WORD   - Show help for WORD
  .load FILE   - Load and run a source file`

// RunRepl drives an interactive session over the given evaluator and
// returns the process exit code. Errors are reported and the loop
// continues; the evaluator's state is kept as-is.
func RunRepl(e *evaluator.Evaluator, cfg Config) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return completeWord(e, line)
	})

	histPath := historyPath(cfg)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			fmt.Println("Interrupted. Type 'quit' to exit.")
			continue
		}
		if err != nil {
			fmt.Println()
			return 0
		}

		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		ln.AppendHistory(line)

		if stripped == "quit" || stripped == "exit" {
			return 0
		}
		if strings.HasPrefix(stripped, ".") {
			runMetaCommand(e, stripped)
			continue
		}

		if err := e.Run(line); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		showStackBrief(e)
	}
}

func historyPath(cfg Config) string {
	if filepath.IsAbs(cfg.HistoryFile) {
		return cfg.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg.HistoryFile
	}
	return filepath.Join(home, cfg.HistoryFile)
}

// completeWord completes the word being typed at the end of the line
// from the primitive registry and the user definitions.
func completeWord(e *evaluator.Evaluator, line string) []string {
	cut := strings.LastIndexAny(line, " \t[]{};")
	head, partial := line[:cut+1], line[cut+1:]
	if partial == "" {
		return nil
	}
	var out []string
	for _, name := range append(evaluator.Names(), e.Definitions()...) {
		if strings.HasPrefix(name, partial) {
			out = append(out, head+name)
		}
	}
	sort.Strings(out)
	return out
}

func runMetaCommand(e *evaluator.Evaluator, cmd string) {
	name, arg := cmd, ""
	if i := strings.IndexAny(cmd, " \t"); i > 0 {
		name, arg = cmd[:i], strings.TrimSpace(cmd[i:])
	}

	switch name {
	case ".s", ".stack":
		showStack(e)
	case ".c", ".clear":
		e.Ctx.Stack.Clear()
		fmt.Println("Stack cleared.")
	case ".w", ".words":
		showWords(e, arg)
	case ".h":
		if arg == "" {
			fmt.Println(replHelp)
		} else {
			showWordHelp(e, arg)
		}
	case ".help":
		if arg == "" {
			fmt.Println(replHelp)
		} else {
			showWordHelp(e, arg)
		}
	case ".load":
		if arg == "" {
			fmt.Println("  Usage: .load FILE")
			return
		}
		loadFile(e, arg)
	default:
		fmt.Printf("Unknown command: %s (try '.help')\n", name)
	}
}

func loadFile(e *evaluator.Evaluator, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}
	if err := e.Run(string(source)); err != nil {
		fmt.Printf("  Error loading %s: %v\n", path, err)
		return
	}
	fmt.Printf("  Loaded: %s\n", path)
}

func showStack(e *evaluator.Evaluator) {
	items := e.Ctx.Stack.Items()
	if len(items) == 0 {
		fmt.Println("Stack: (empty)")
		return
	}
	fmt.Println("Stack (bottom to top):")
	for i, v := range items {
		repr := v.Inspect()
		if len(repr) > 60 {
			repr = repr[:57] + "..."
		}
		fmt.Printf("  %d: %s: %s\n", i, v.Kind(), repr)
	}
}

func showStackBrief(e *evaluator.Evaluator) {
	items := e.Ctx.Stack.Items()
	if len(items) == 0 {
		fmt.Println("Stack: (empty)")
		return
	}
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = v.Inspect()
	}
	line := strings.Join(parts, " ")
	if len(line) > 70 {
		line = line[:67] + "..."
	}
	fmt.Printf("Stack: %s\n", line)
}

func showWords(e *evaluator.Evaluator, pattern string) {
	primitives := evaluator.Names()
	definitions := e.Definitions()

	if pattern != "" {
		var matched []string
		for _, w := range append(primitives, definitions...) {
			if strings.Contains(w, pattern) {
				matched = append(matched, w)
			}
		}
		fmt.Printf("%d words matching '%s':\n", len(matched), pattern)
		printColumns(matched)
		return
	}

	fmt.Printf("Primitives (%d):\n", len(primitives))
	printColumns(primitives)
	if len(definitions) > 0 {
		fmt.Printf("\nUser definitions (%d):\n", len(definitions))
		printColumns(definitions)
	}
}

func printColumns(words []string) {
	const cols = 6
	for i := 0; i < len(words); i += cols {
		end := i + cols
		if end > len(words) {
			end = len(words)
		}
		row := words[i:end]
		padded := make([]string, len(row))
		for j, w := range row {
			padded[j] = fmt.Sprintf("%-12s", w)
		}
		fmt.Println("  " + strings.Join(padded, "  "))
	}
}

func showWordHelp(e *evaluator.Evaluator, word string) {
	if p, ok := evaluator.Lookup(word); ok {
		fmt.Printf("\n  %s\n", word)
		if p.Params != "" {
			fmt.Printf("    %s\n", p.Params)
		}
		if p.Doc != "" {
			fmt.Printf("    %s\n", p.Doc)
		}
		fmt.Println()
		return
	}
	if body, ok := e.Definition(word); ok {
		fmt.Printf("\n  %s\n    User-defined: %s\n\n", word, body.Inspect())
		return
	}

	var similar []string
	for _, w := range append(evaluator.Names(), e.Definitions()...) {
		if strings.Contains(w, word) || strings.Contains(word, w) {
			similar = append(similar, w)
		}
	}
	fmt.Printf("Unknown word: %s\n", word)
	if len(similar) > 0 {
		sort.Strings(similar)
		if len(similar) > 5 {
			similar = similar[:5]
		}
		fmt.Printf("Did you mean: %s\n", strings.Join(similar, ", "))
	}
}
