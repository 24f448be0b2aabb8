package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/uzleo/gojson"
	"github.com/uzleo/gojson/internal/config"
	"github.com/uzleo/gojson/internal/errors"
	"github.com/uzleo/gojson/internal/transform"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Compact     bool   `help:"Emit compact output instead of pretty-printed." short:"c"`
	Indent      string `help:"Indent string for pretty-printed output." default:""`
	KeyCase     string `help:"Rewrite object keys: none, snake, camel, kebab or pascal." default:""`
	Config      string `help:"Path to a YAML config file. Searched upward from the working directory when omitted." type:"path"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("gojson"),
		kong.Description("A tool to validate and pretty-print JSON documents"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("gojson version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: gojson --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	// 1. Resolve configuration (file values first, CLI flags win)
	cfg, err := loadConfig()
	if err != nil {
		return errors.NewInputError("failed to load configuration", err)
	}

	// 2. Parse JSON input
	value, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 3. Rewrite object keys if requested
	caser, err := transform.KeyCaser(transform.KeyCase(cfg.Keys.Case))
	if err != nil {
		return errors.NewInputError("invalid key case", err)
	}
	if caser != nil {
		value = transform.RewriteKeys(value, caser)
	}

	// 4. Serialize
	var out string
	if cfg.Output.Compact {
		out = value.Dump()
	} else {
		out = value.DumpIndent(cfg.Output.Indent)
	}

	// 5. Output the result
	return writeOutput(out)
}

// loadConfig reads the YAML config file and overlays CLI flags
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.MergeCLI(CLI.Compact, CLI.Indent, CLI.KeyCase)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseInput reads JSON from file or stdin
func parseInput() (gojson.Value, error) {
	if CLI.Input != "" {
		// Parse from file
		return gojson.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return gojson.Value{}, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			// Interactive mode
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return gojson.Value{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return gojson.Value{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return gojson.Value{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return gojson.ParseString(string(jsonData))
}

// writeOutput writes serialized JSON to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(out+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Formatted JSON written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(strings.TrimSpace(out))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (gojson.Value, error) {
	fmt.Fprintln(os.Stderr, "gojson Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return gojson.Value{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return gojson.Value{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return gojson.ParseString(jsonData)
}
