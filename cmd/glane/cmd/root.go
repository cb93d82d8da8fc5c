// Package cmd implements the glane CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (dump, config).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-glane/glane/pkg/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(env *Env, args []string) error
	SubCommands []*Command
}

// Env is what a command runs against: the project directory and the
// output stream.
type Env struct {
	Dir string
	Out io.Writer
}

// resolve loads glane.yaml from the project directory.
func (e *Env) resolve() (*config.Resolved, error) {
	cfg, err := config.LoadOptional(e.Dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(e.Dir)
}

var rootCmd = &Command{
	Name:  "glane",
	Short: "glane - a retained-mode UI engine",
	Long: `glane lays out widget trees into flat, layered element lists for a
renderer to draw. This tool builds a sample scene with the project's
glane.yaml and shows what the engine produces.

Use "glane <command> --help" for more information about a command.`,
	Usage: "glane <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	return execute(args, os.Stdout)
}

func execute(args []string, out io.Writer) error {
	env := &Env{Out: out}

	if len(args) == 0 {
		printHelp(out, rootCmd)
		return nil
	}

	// Handle global flags and extract --dir
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(out, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(out, "glane version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--dir":
			if i+1 >= len(args) {
				return fmt.Errorf("--dir requires a directory path")
			}
			env.Dir = args[i+1]
			i++
		default:
			if dir, ok := strings.CutPrefix(arg, "--dir="); ok {
				env.Dir = dir
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(out, rootCmd)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		printHelp(out, rootCmd)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}

	if env.Dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			root = "."
		}
		env.Dir = root
	}
	return cmd.Run(env, cmdArgs)
}

func printHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(out, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help           Show help for a command")
	fmt.Fprintln(out, "  -v, --version        Show version information")
	fmt.Fprintln(out, "  --dir DIR            Project directory (default: nearest with glane.yaml or go.mod)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  glane dump                  Print the sample scene's layout")
	fmt.Fprintln(out, "  glane dump --click 100,12   Click, re-layout, then print")
	fmt.Fprintln(out, "  glane config                Show the resolved configuration")
}

func printCommandHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}
