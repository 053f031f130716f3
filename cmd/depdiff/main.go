package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/infrastructure/controllers"
)

const usageExitCode = 1

func buildRootCommand(compareController *controllers.CompareController) *cobra.Command {
	bind := compareController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return compareController.Execute(command, args)
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	compareController.AddFlags(cmd)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(entities.ErrUsage, err)
	})
	cmd.SetOut(os.Stdout)
	return cmd
}

// run executes the root command. Usage errors print the usage text to standard
// output and yield exit code 1; any other failure is returned to the caller.
func run(cmd *cobra.Command, args []string) (int, error) {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0, nil
	}

	if errors.Is(err, entities.ErrUsage) {
		if err.Error() != entities.ErrUsage.Error() {
			cmd.PrintErrln("Error:", err)
		}
		_ = cmd.Usage()
		return usageExitCode, nil
	}
	return usageExitCode, err
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetRootController())

	code, err := run(cobraRoot, os.Args[1:])
	if err != nil {
		logger.Fatalf("Error executing 'depdiff': %s", err)
	}
	os.Exit(code)
}
