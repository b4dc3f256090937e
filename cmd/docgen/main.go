// Command docgen generates the documents of the catalogue from the command
// line.
//
// Usage:
//
//	docgen list
//	docgen describe <id>
//	docgen render <id>... [--values file] [--print | --preview] [--merge name]
//	docgen fill <id>
//	docgen validate <cpf-or-cnpj>...
//	docgen words <amount>
//
// Every command accepts the shared flags (--out, --author, --watermark,
// --page-numbers, --format, --loglevel, --config); they can also be set
// through DOCGEN_* environment variables.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/anixcopiadora/docgen"
	"github.com/anixcopiadora/docgen/internal/config"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// app carries what every command needs once flags are resolved.
type app struct {
	cfg    *config.Config
	gen    *docgen.Generator
	stdout io.Writer
	stderr io.Writer
	prompt Prompter
}

type command struct {
	usage string
	short string
	flags func(fs *pflag.FlagSet)
	run   func(a *app, fs *pflag.FlagSet, args []string) error
}

var commands = map[string]command{
	"list": {
		usage: "list",
		short: "List the templates of the catalogue",
		run:   runList,
	},
	"describe": {
		usage: "describe <id>",
		short: "Show the tabs and fields of a template",
		run:   runDescribe,
	},
	"render": {
		usage: "render <id>... [--values file] [--print | --preview] [--merge name]",
		short: "Generate documents from a values file",
		flags: renderFlags,
		run:   runRender,
	},
	"fill": {
		usage: "fill <id>",
		short: "Fill a template interactively and generate it",
		run:   runFill,
	},
	"validate": {
		usage: "validate <cpf-or-cnpj>...",
		short: "Check CPF and CNPJ numbers",
		run:   runValidate,
	},
	"words": {
		usage: "words <amount>",
		short: "Spell an amount in words",
		run:   runWords,
	},
}

// errUsage reports a malformed command line; the command usage is printed.
var errUsage = errors.New("invalid arguments")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, newSurveyPrompter()))
}

func run(args []string, stdout, stderr io.Writer, prompt Prompter) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "docgen: unknown command %q\n\n", name)
		printUsage(stderr)
		return exitUsage
	}

	fs := config.Flags(name)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: docgen %s\n\n", cmd.usage)
		fs.PrintDefaults()
	}
	if cmd.flags != nil {
		cmd.flags(fs)
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.FromFlags(fs)
	if err != nil {
		fmt.Fprintf(stderr, "docgen: %v\n", err)
		return exitUsage
	}
	setupLogging(cfg, stderr)
	log.Printf("Starting with configuration: %s", cfg)

	a := &app{
		cfg:    cfg,
		gen:    docgen.New(cfg.GeneratorOptions()...),
		stdout: stdout,
		stderr: stderr,
		prompt: prompt,
	}
	if err := cmd.run(a, fs, fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			return exitUsage
		}
		fmt.Fprintf(stderr, "docgen %s: %v\n", name, err)
		return exitError
	}
	return exitOK
}

// setupLogging writes diagnostics to stderr only at debug level, keeping
// stdout clean for command output.
func setupLogging(cfg *config.Config, stderr io.Writer) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetPrefix("docgen: ")
	if cfg.IsDebug() {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "docgen - Gerador de Documentos Diversos\n\nUsage:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  docgen %-70s %s\n", commands[name].usage, commands[name].short)
	}
	fmt.Fprintf(w, "\nRun 'docgen <command> --help' for the flags of a command.\n")
}
