package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/nagaozen/schematools"
	"github.com/nagaozen/schematools/docpath"
	"github.com/nagaozen/schematools/internal/mcpserver"
	"github.com/nagaozen/schematools/loader"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schematools v%s\n", schematools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "compose":
		if err := handleCompose(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "fetch":
		if err := handleFetch(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "path":
		if err := handlePath(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// composeFlags contains flags for the compose command
type composeFlags struct {
	output   string
	basepath string
	baseDir  string
	lang     string
	asYAML   bool
	maxDocs  int
	verbose  bool
}

func setupComposeFlags() (*flag.FlagSet, *composeFlags) {
	fs := flag.NewFlagSet("compose", flag.ContinueOnError)
	flags := &composeFlags{}

	fs.StringVar(&flags.output, "o", "", "write the composed document to a file instead of stdout")
	fs.StringVar(&flags.basepath, "basepath", "", "base address relative references are resolved against")
	fs.StringVar(&flags.baseDir, "base-dir", ".", "root directory for file references")
	fs.StringVar(&flags.lang, "lang", loader.DefaultLang, "BCP 47 language tag for localization overlays")
	fs.BoolVar(&flags.asYAML, "yaml", false, "output YAML instead of JSON")
	fs.IntVar(&flags.maxDocs, "max-documents", loader.DefaultMaxDocuments, "maximum documents fetched per compose")
	fs.BoolVar(&flags.verbose, "verbose", false, "log resolution progress to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schematools compose [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "Compose a schema and every schema it references into one document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schematools compose person.schema.json\n")
		_, _ = fmt.Fprintf(output, "  schematools compose --lang pt-BR --basepath https://example.com/schemas/ person.schema.json\n")
		_, _ = fmt.Fprintf(output, "  schematools compose -o composed.yaml --yaml person.schema.json\n")
	}

	return fs, flags
}

func handleCompose(args []string) error {
	fs, flags := setupComposeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("compose command requires exactly one file path or URL")
	}

	opts := loaderOptions(flags.baseDir, flags.lang, flags.maxDocs, flags.verbose)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := loader.Load(ctx, fs.Arg(0), flags.basepath, opts...)
	if err != nil {
		return fmt.Errorf("composing schema: %w", err)
	}

	data, err := renderDocument(result, flags.asYAML)
	if err != nil {
		return err
	}
	return writeOutput(flags.output, data)
}

// fetchFlags contains flags for the fetch command
type fetchFlags struct {
	output   string
	basepath string
	baseDir  string
	lang     string
	asYAML   bool
}

func setupFetchFlags() (*flag.FlagSet, *fetchFlags) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	flags := &fetchFlags{}

	fs.StringVar(&flags.output, "o", "", "write the document to a file instead of stdout")
	fs.StringVar(&flags.basepath, "basepath", "", "base address the uri is resolved against")
	fs.StringVar(&flags.baseDir, "base-dir", ".", "root directory for file references")
	fs.StringVar(&flags.lang, "lang", loader.DefaultLang, "BCP 47 language tag for the localization overlay")
	fs.BoolVar(&flags.asYAML, "yaml", false, "output YAML instead of JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schematools fetch [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "Fetch and localize a single schema without resolving references.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schematools fetch person.schema.json\n")
		_, _ = fmt.Fprintf(output, "  schematools fetch --lang fr-FR https://example.com/schemas/person.schema.json\n")
	}

	return fs, flags
}

func handleFetch(args []string) error {
	fs, flags := setupFetchFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("fetch command requires exactly one file path or URL")
	}

	opts := loaderOptions(flags.baseDir, flags.lang, loader.DefaultMaxDocuments, false)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	doc, err := loader.LoadSchema(ctx, fs.Arg(0), flags.basepath, opts...)
	if err != nil {
		return fmt.Errorf("fetching schema: %w", err)
	}

	data, err := renderDocument(doc, flags.asYAML)
	if err != nil {
		return err
	}
	return writeOutput(flags.output, data)
}

// pathFlags contains flags for the path command
type pathFlags struct {
	defaultValue string
}

func setupPathFlags() (*flag.FlagSet, *pathFlags) {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	flags := &pathFlags{}

	fs.StringVar(&flags.defaultValue, "default", "", "JSON value to print when the path is absent")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schematools path [flags] <file> <path>\n\n")
		_, _ = fmt.Fprintf(output, "Read a value out of a JSON or YAML document by dotted path.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schematools path person.schema.json properties.name.description\n")
		_, _ = fmt.Fprintf(output, "  schematools path --default '\"unknown\"' person.schema.json title\n")
	}

	return fs, flags
}

func handlePath(args []string) error {
	fs, flags := setupPathFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("path command requires a file path and a document path")
	}

	raw, err := os.ReadFile(filepath.Clean(fs.Arg(0)))
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	value, ok := docpath.Get(doc, fs.Arg(1))
	if !ok {
		if flags.defaultValue == "" {
			return fmt.Errorf("path %q not found", fs.Arg(1))
		}
		if err := json.Unmarshal([]byte(flags.defaultValue), &value); err != nil {
			return fmt.Errorf("parsing default value: %w", err)
		}
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func handleMCP() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return mcpserver.Run(ctx)
}

// loaderOptions assembles the provider set shared by compose and fetch.
func loaderOptions(baseDir, lang string, maxDocs int, verbose bool) []loader.Option {
	hp := loader.NewHTTPProvider(&http.Client{Timeout: 30 * time.Second})
	opts := []loader.Option{
		loader.WithProvider("file", loader.NewFileProvider(baseDir)),
		loader.WithProvider("http", hp),
		loader.WithProvider("https", hp),
		loader.WithLang(lang),
		loader.WithMaxDocuments(maxDocs),
	}
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, loader.WithLogger(loader.NewSlogAdapter(slog.New(handler))))
	}
	return opts
}

// renderDocument marshals a document as indented JSON or YAML.
func renderDocument(doc any, asYAML bool) ([]byte, error) {
	if asYAML {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// commands lists every recognised subcommand, for typo suggestions.
var commands = []string{"compose", "fetch", "path", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`schematools - JSON Schema Composition Tools

Usage:
  schematools <command> [options]

Commands:
  compose     Compose a schema and all referenced schemas into one document
  fetch       Fetch and localize a single schema without resolving references
  path        Read a value out of a JSON or YAML document by dotted path
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  schematools compose person.schema.json
  schematools compose --lang pt-BR --basepath https://example.com/schemas/ person.schema.json
  schematools fetch --lang fr-FR person.schema.json
  schematools path person.schema.json properties.name.description

Run 'schematools <command> --help' for more information on a command.`)
}
