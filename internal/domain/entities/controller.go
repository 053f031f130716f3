package entities

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrUsage signals that the command line could not be interpreted.
var ErrUsage = errors.New("invalid usage")

// ControllerBind holds the Cobra metadata a controller exposes.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every command-line entry point.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
