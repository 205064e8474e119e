// Command forma lowers a design-tool JSON export into the semantic IR and
// prints the result. It is a thin shell around the library: file reading
// and output formatting happen here, never in the pipeline.
//
// Usage:
//
//	forma lower export.json --format json
//	forma tokens export.json --format yaml
//	forma inspect export.json
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/forma"
	"github.com/tsawler/forma/designdoc"
	"github.com/tsawler/forma/normalize"
)

// CLI defines the command-line interface for forma.
var CLI struct {
	Lower   LowerCmd   `cmd:"" help:"Lower an export to IR, styles, and detection results"`
	Tokens  TokensCmd  `cmd:"" help:"Print only the collected design tokens"`
	Inspect InspectCmd `cmd:"" help:"Print the IR tree for a quick look"`
}

// commonOptions are the flags every subcommand shares.
type commonOptions struct {
	Export         string   `arg:"" help:"Path to the design export JSON" type:"existingfile"`
	IgnorePatterns []string `name:"ignore" help:"Extra wildcard patterns for layers to drop"`
	NoSafeArea     bool     `name:"no-safe-area" help:"Keep OS chrome instead of stripping it"`
}

func (o *commonOptions) lower() (*forma.Result, error) {
	data, err := os.ReadFile(o.Export)
	if err != nil {
		return nil, err
	}
	root, err := designdoc.Decode(data)
	if err != nil {
		return nil, err
	}

	pipeline := forma.NewPipeline().DetectSafeArea(!o.NoSafeArea)
	if len(o.IgnorePatterns) > 0 {
		patterns := append(normalize.DefaultIgnorePatterns(), o.IgnorePatterns...)
		pipeline.IgnorePatterns(patterns...)
	}
	return pipeline.Lower(root), nil
}

// LowerCmd runs the full pipeline and prints the output triple.
type LowerCmd struct {
	commonOptions
	Format string `help:"Output format: json or yaml" enum:"json,yaml" default:"json"`
}

// Run executes the lower command.
func (c *LowerCmd) Run() error {
	result, err := c.lower()
	if err != nil {
		return err
	}
	return emit(output{
		Root:           encodeNode(result.Root),
		GenerationRoot: result.GenerationRoot.Common().ID,
		Styles:         encodeStyles(result),
		Tokens:         result.Styles.Tokens,
		Detection:      result.Detection,
	}, c.Format)
}

// TokensCmd prints the token tables alone.
type TokensCmd struct {
	commonOptions
	Format string `help:"Output format: json or yaml" enum:"json,yaml" default:"yaml"`
}

// Run executes the tokens command.
func (c *TokensCmd) Run() error {
	result, err := c.lower()
	if err != nil {
		return err
	}
	return emit(result.Styles.Tokens, c.Format)
}

// InspectCmd prints a styled tree of the IR to stdout.
type InspectCmd struct {
	commonOptions
}

// Run executes the inspect command.
func (c *InspectCmd) Run() error {
	result, err := c.lower()
	if err != nil {
		return err
	}
	printTree(os.Stdout, result)
	return nil
}

func emit(v any, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("forma"),
		kong.Description("Lower design exports into a semantic IR for code generation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
