// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

// schemamd generates CommonMark docs and example payloads from JSON Schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/mdocgen/schemamd"
	"github.com/mdocgen/schemamd/internal/mcpserver"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/mdocgen/schemamd"
	_buildTime string
)

// cliOptions describes schemamd CLI flags and subcommands.
type cliOptions struct {
	Version          versionCommand       `command:"version" description:"Print version information"`
	Template         templateCommand      `command:"template" description:"Print built-in markdown template"`
	SchemaToMarkdown schemaToMarkdownCmd  `command:"schema2md" description:"Convert JSON Schema to markdown"`
	SchemaToJSON     schemaToExampleCmd   `command:"schema2json" description:"Generate JSON example payload from schema"`
	SchemaToYAML     schemaToYAMLExample  `command:"schema2yaml" description:"Generate YAML example payload from schema"`
	ModelContext     modelContextProtoCmd `command:"mcp" description:"Serve render tools over the Model Context Protocol on stdio"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	TemplatePath  string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title         string `short:"T" long:"title" description:"Markdown document title" default:"schema reference"`
	TagPrefix     string `long:"tag-prefix" description:"Prefix for generated section anchors"`
	RefTagPrefix  string `long:"ref-tag-prefix" description:"Prefix for referenced definition anchors"`
	MaxNesting    int    `short:"n" long:"max-nesting" description:"Nesting depth before sub-schemas get their own section" default:"2"`
	ListMarker    string `short:"l" long:"list-marker" description:"Unordered list marker for normalized descriptions" choice:"-" choice:"*" default:"*"`
	WrapWidth     int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions" default:"80"`
	ExampleMode   string `short:"e" long:"example" description:"Include generated example in output" choice:"all" choice:"required"`
	ExampleFormat string `long:"example-format" description:"Generated example encoding" choice:"json" choice:"yaml" default:"yaml"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" default:"list"`
}

// exampleModeFlags groups example payload generation flags.
type exampleModeFlags struct {
	Mode string `short:"m" long:"mode" description:"Property coverage of generated example" choice:"all" choice:"required" default:"all"`
}

// schemaIOArgs are shared positional input/output arguments.
type schemaIOArgs struct {
	Input  string `positional-arg-name:"input" description:"Input schema file path (optional; stdin when omitted)"`
	Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
}

// schemaToMarkdownCmd converts schema JSON or YAML to markdown.
type schemaToMarkdownCmd struct {
	runner *cliRunner
	Args   schemaIOArgs `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs schema2md subcommand.
func (command *schemaToMarkdownCmd) Execute(_ []string) error {
	return command.runner.runSchemaToMarkdown(command.TemplateFlags, command.RenderFlags, command.Args)
}

// schemaToExampleCmd generates a JSON example payload from a schema.
type schemaToExampleCmd struct {
	runner *cliRunner
	Args   schemaIOArgs `positional-args:"yes"`

	ExampleFlags exampleModeFlags `group:"Example"`
}

// Execute runs schema2json subcommand.
func (command *schemaToExampleCmd) Execute(_ []string) error {
	return command.runner.runExample(schemamd.ExampleFormatJSON, command.ExampleFlags.Mode, command.Args)
}

// schemaToYAMLExample generates a YAML example payload from a schema.
type schemaToYAMLExample struct {
	runner *cliRunner
	Args   schemaIOArgs `positional-args:"yes"`

	ExampleFlags exampleModeFlags `group:"Example"`
}

// Execute runs schema2yaml subcommand.
func (command *schemaToYAMLExample) Execute(_ []string) error {
	return command.runner.runExample(schemamd.ExampleFormatYAML, command.ExampleFlags.Mode, command.Args)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// modelContextProtoCmd serves render tools over MCP stdio transport.
type modelContextProtoCmd struct {
	runner *cliRunner
}

// Execute runs mcp subcommand.
func (command *modelContextProtoCmd) Execute(_ []string) error {
	return mcpserver.Run(context.Background(), mcpserver.Options{
		Version: Version,
		Stderr:  command.runner.stderr,
	})
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemamd"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runSchemaToMarkdown executes schema-to-markdown flow and writes result to stdout or file.
func (runner *cliRunner) runSchemaToMarkdown(templateFlags templateSelectFlags, renderFlags markdownRenderFlags, args schemaIOArgs) error {
	schemaBytes, sourcePath, err := runner.readSchemaInput(args.Input)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	runner.warnDraftSupport(schemaBytes)

	renderOptions := schemamd.Options{
		Title:         renderFlags.Title,
		SourcePath:    sourcePath,
		TemplateName:  templateFlags.TemplateName,
		TagPrefix:     renderFlags.TagPrefix,
		RefTagPrefix:  renderFlags.RefTagPrefix,
		MaxNesting:    renderFlags.MaxNesting,
		WrapWidth:     renderFlags.WrapWidth,
		ListMarker:    renderFlags.ListMarker,
		ExampleMode:   schemamd.ExampleMode(renderFlags.ExampleMode),
		ExampleFormat: schemamd.ExampleFormat(renderFlags.ExampleFormat),
	}

	if renderFlags.TemplatePath != "" {
		customTemplate, err := os.ReadFile(renderFlags.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", renderFlags.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := schemamd.Render(schemaBytes, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput(args.Output, []byte(rendered), "markdown")
}

// runExample generates example payload and writes result to stdout or file.
func (runner *cliRunner) runExample(format schemamd.ExampleFormat, mode string, args schemaIOArgs) error {
	schemaBytes, _, err := runner.readSchemaInput(args.Input)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	payload, err := schemamd.GenerateExample(schemaBytes, schemamd.ExampleMode(mode), format)
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	return runner.writeOutput(args.Output, payload, "example")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := schemamd.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, []byte(tpl), "template")
}

// warnDraftSupport prints a stderr warning for missing or unsupported drafts.
func (runner *cliRunner) warnDraftSupport(schemaBytes []byte) {
	draftURI := extractSchemaDraftURI(schemaBytes)
	if draftURI == "" {
		_, _ = fmt.Fprintln(runner.stderr, "warning: schema has no $schema value; draft support is unknown")
		return
	}

	if draft := schemamd.DetectDraft(draftURI); !draft.Supported {
		_, _ = fmt.Fprintf(runner.stderr, "warning: unsupported $schema value %q\n", draftURI)
	}
}

// writeOutput writes result bytes to stdout or a file path.
func (runner *cliRunner) writeOutput(path string, data []byte, kind string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, path, err)
	}

	return nil
}

// readSchemaInput reads schema from file path or stdin and returns source marker.
func (runner *cliRunner) readSchemaInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read schema file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read schema from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Template.runner = runner
	options.SchemaToMarkdown.runner = runner
	options.SchemaToJSON.runner = runner
	options.SchemaToYAML.runner = runner
	options.ModelContext.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text.
Use it as a starting point for a custom template file.

Examples:
> $ %s template > list.gotmpl
`, programName)),
		"schema2md": strings.TrimSpace(fmt.Sprintf(`
Convert JSON Schema (JSON or YAML) to markdown.
Reads schema from file argument or stdin; writes markdown to file argument or stdout.

Examples:
> $ %s schema2md schema.json > schema.md
> $ cat schema.yaml | %s schema2md -e required > schema.md
`, programName, programName)),
		"schema2json": strings.TrimSpace(fmt.Sprintf(`
Generate a JSON example payload that satisfies the schema shape.

Examples:
> $ %s schema2json schema.json > example.json
> $ %s schema2json -m required schema.json example.json
`, programName, programName)),
		"schema2yaml": strings.TrimSpace(fmt.Sprintf(`
Generate a YAML example payload with schema titles and descriptions as comments.

Examples:
> $ %s schema2yaml schema.json > example.yaml
> $ %s schema2yaml -m required schema.yaml example.yaml
`, programName, programName)),
		"mcp": strings.TrimSpace(fmt.Sprintf(`
Serve render, example and draft-detection tools over the Model Context Protocol.
The server speaks JSON-RPC on stdin/stdout; diagnostics go to stderr.

Examples:
> $ %s mcp
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// extractSchemaDraftURI returns the raw $schema value from a schema document.
func extractSchemaDraftURI(schemaBytes []byte) string {
	root, err := schemamd.ParseNode(schemaBytes)
	if err != nil {
		return ""
	}

	value, _ := root.Get("$schema")
	text, _ := value.(string)
	return strings.TrimSpace(text)
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
