// Package command wires the promptman CLI: list, show and render subcommands
// over a directory-backed prompt store.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	promptman "github.com/MarioMagdy/prompt-manager"
	"github.com/MarioMagdy/prompt-manager/filestore"
	"github.com/MarioMagdy/prompt-manager/internal/config"
)

// Defaults is the single source of flag default values.
var Defaults = config.Default()

// New builds the top-level promptman command. Commands are single-use in
// cli/v3, so callers (main, tests) construct a fresh tree per run.
func New() *cli.Command {
	return &cli.Command{
		Name:  "promptman",
		Usage: "manage and render YAML prompt templates",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   Defaults.Dir,
				Usage:   "directory containing prompt files",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Value: Defaults.Strict,
				Usage: "fail on missing render parameters",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list prompt ids and descriptions",
				Action: listAction,
			},
			{
				Name:      "show",
				Usage:     "print the raw template text for a prompt",
				ArgsUsage: "<id>",
				Action:    showAction,
			},
			{
				Name:      "render",
				Usage:     "render a prompt with key=value parameters",
				ArgsUsage: "<id> [key=value ...]",
				Action:    renderAction,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
}

// newManager loads config and builds a Manager over a filestore.
func newManager(cmd *cli.Command) (*promptman.Manager, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}
	store, err := filestore.New(cfg.Dir)
	if err != nil {
		return nil, err
	}
	return promptman.New(store, promptman.WithStrict(cfg.Strict)), nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	infos, err := m.ListPrompts(ctx)
	if err != nil {
		return err
	}
	w := cmd.Root().Writer
	for _, info := range infos {
		if desc, _ := info.Metadata["description"].(string); desc != "" {
			fmt.Fprintf(w, "%s\t%s\n", info.ID, desc)
			continue
		}
		fmt.Fprintln(w, info.ID)
	}
	return nil
}

func showAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("show: prompt id required")
	}
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	tpl, err := m.Template(ctx, cmd.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, tpl.Text)
	return nil
}

func renderAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 1 {
		return fmt.Errorf("render: prompt id required")
	}
	params := make(promptman.Params, len(args)-1)
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return fmt.Errorf("render: parameter %q is not key=value", arg)
		}
		params[key] = value
	}
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	out, err := m.Render(ctx, args[0], params)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, out)
	return nil
}
