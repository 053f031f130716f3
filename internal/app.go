package internal

import (
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/infrastructure/controllers"
)

// AppInternal is the root of the dependency graph handed to the entry point.
type AppInternal struct {
	controllers       []entities.Controller
	compareController *controllers.CompareController
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	registered *[]entities.Controller,
	compareController *controllers.CompareController,
) *AppInternal {
	return &AppInternal{
		controllers:       *registered,
		compareController: compareController,
	}
}

// GetControllers returns every registered controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.CompareController {
	return it.compareController
}
