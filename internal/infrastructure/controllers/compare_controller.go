package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdiff/internal/domain/commands"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

const maxPositionalArgs = 2

// CompareController handles the root command: depdiff [target_branch] [base_branch].
type CompareController struct {
	command commands.Compare
}

// NewCompareController creates a new CompareController.
func NewCompareController(command commands.Compare) *CompareController {
	return &CompareController{command: command}
}

// GetBind returns the Cobra command metadata for the compare controller.
func (it *CompareController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "depdiff [target_branch] [base_branch] [--json]",
		Short: "Show which dependencies a branch adds or removes",
		Long: `Compare two git branches and report the dependencies added or removed
in dependency manifests (package.json, requirements.txt, go.mod, Cargo.toml, ...),
grouped by language.

Usage modes:
  depdiff feature          Compare "feature" against the current branch
  depdiff feature main     Compare "feature" against "main"
  depdiff feature --json   Print the result as JSON`,
	}
}

// AddFlags adds the compare-specific flags to the given Cobra command.
func (it *CompareController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.Flags().Bool("color", false, "Colour added and removed dependencies in text output")
	cmd.Flags().String("backend", entities.BackendGitCLI,
		fmt.Sprintf("Version control backend (%s, %s)", entities.BackendGitCLI, entities.BackendGoGit))
	cmd.Flags().String("repo", ".", "Path to the git working copy")
}

// Execute runs the comparison. It returns entities.ErrUsage when the arguments
// do not name a target branch.
func (it *CompareController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) > maxPositionalArgs {
		return entities.ErrUsage
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := commands.CompareOptions{
		TargetBranch: args[0],
		Backend:      settings.Backend,
		RepoDir:      settings.RepoDir,
		JSON:         settings.JSON,
		Color:        settings.Color,
		Output:       cmd.OutOrStdout(),
	}
	if len(args) == maxPositionalArgs {
		opts.BaseBranch = args[1]
	}
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")

	_, err = it.command.Execute(context.Background(), opts)
	return err
}

// loadSettings merges the config file and environment with the flags that
// were explicitly set on the command line.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, findErr := entities.FindConfigFile()
		if findErr == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		settings.JSON, _ = flags.GetBool("json")
	}
	if flags.Changed("color") {
		settings.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("backend") {
		settings.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("repo") {
		settings.RepoDir, _ = flags.GetString("repo")
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, errors.Join(entities.ErrUsage, validateErr)
	}
	return settings, nil
}
