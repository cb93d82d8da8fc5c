package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration glane resolves for the project: glane.yaml
values merged over the defaults, the loaded font and the measurer.`,
		Usage: "glane config",
		Run:   runConfig,
	})
}

func runConfig(env *Env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments")
	}
	r, err := env.resolve()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	module := r.ModulePath
	if module == "" {
		module = "(none)"
	}
	fmt.Fprintf(env.Out, "Project:  %s\n", r.AppName)
	fmt.Fprintf(env.Out, "Root:     %s\n", r.Root)
	fmt.Fprintf(env.Out, "Module:   %s\n", module)
	fmt.Fprintf(env.Out, "Viewport: %gx%g\n", r.Viewport.Width, r.Viewport.Height)
	fmt.Fprintf(env.Out, "Font:     %s\n", r.Font)
	fmt.Fprintf(env.Out, "Measurer: %T\n", r.Measurer)
	fmt.Fprintf(env.Out, "Strict:   %t\n", r.Strict)
	return nil
}
