package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/artview/internal/core/config"
	"github.com/colonyops/artview/internal/core/styles"
	"github.com/colonyops/artview/internal/printer"
	"github.com/colonyops/artview/pkg/iojson"
)

type ConfigCmd struct {
	flags *Flags

	format string
	yes    bool
	force  bool
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "artview config validate [options]",
				Description: "Validates the configuration file, checking the API URL, field projection, page sizes, theme and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:        "init",
				Usage:       "Write a config file",
				UsageText:   "artview config init [--yes] [--force]",
				Description: "Prompts for the API endpoint, page size and theme and writes them to the config path.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "skip prompts and write defaults",
						Destination: &cmd.yes,
					},
					&cli.BoolFlag{
						Name:        "force",
						Usage:       "overwrite an existing config file",
						Destination: &cmd.force,
					},
				},
				Action: cmd.runInit,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationOutput struct {
	Valid    bool              `json:"valid"`
	Errors   []validationIssue `json:"errors,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

func collectIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Field: "config", Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	issues := collectIssues(cfg.ValidateDeep(cmd.flags.ConfigPath))
	out := validationOutput{
		Valid:    len(issues) == 0,
		Errors:   issues,
		Warnings: cfg.Warnings(),
	}

	if cmd.format == "json" {
		errOut := c.Root().ErrWriter
		if errOut == nil {
			errOut = os.Stderr
		}
		if err := iojson.WriteWith(c.Root().Writer, errOut, out); err != nil {
			return err
		}
		if !out.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)
	for _, w := range out.Warnings {
		p.Warnf("%s", w)
	}
	for _, issue := range out.Errors {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	p.Printf("")
	if out.Valid {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(out.Errors))
	return cli.Exit("", 1)
}

func configExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (cmd *ConfigCmd) runInit(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	path := cmd.flags.ConfigPath

	if configExists(path) && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", path)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(path + "\nOverwrite?").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	cfg.DataDir = cmd.flags.DataDir
	if !cmd.yes {
		if err := promptConfig(&cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	p.Successf("Wrote %s", path)
	return nil
}

func promptConfig(cfg *config.Config) error {
	pageSize := strconv.Itoa(cfg.Pagination.PageSize)

	sizeOptions := make([]huh.Option[string], 0, len(cfg.Pagination.PageSizeOptions))
	for _, size := range cfg.Pagination.PageSizeOptions {
		s := strconv.Itoa(size)
		sizeOptions = append(sizeOptions, huh.NewOption(s, s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API base URL").
				Value(&cfg.API.BaseURL).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("base URL is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Resource").
				Description("Path under the base URL that lists records").
				Value(&cfg.API.Resource),
			huh.NewSelect[string]().
				Title("Rows per page").
				Options(sizeOptions...).
				Value(&pageSize),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&cfg.TUI.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	size, err := strconv.Atoi(pageSize)
	if err != nil {
		return fmt.Errorf("page size: %w", err)
	}
	cfg.Pagination.PageSize = size
	return nil
}
