// Package adapter bridges outer interfaces to the session layer.
// This file contains the CLI adapter instance.
package adapter

import (
	"context"
	"fmt"
	"strings"

	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
)

// CLIAdapter provides command-line interface support over a single session
type CLIAdapter struct {
	adapterManager *AdapterManager
	sessionID      string
	logger         *log.Logger
}

// NewCLIAdapter creates a new instance of CLIAdapter
func NewCLIAdapter(am *AdapterManager, logger *log.Logger) *CLIAdapter {
	return &CLIAdapter{
		adapterManager: am,
		logger:         logger,
	}
}

// AdapterStart registers the adapter and creates its session
func (a *CLIAdapter) AdapterStart() error {
	sessionID, err := a.adapterManager.AdapterAdd(a)
	if err != nil {
		return fmt.Errorf("failed to register CLI adapter: %w", err)
	}
	a.sessionID = sessionID
	a.logger.Info(context.Background(), "CLI adapter started", log.Fields{"sessionID": sessionID})
	return nil
}

// AdapterStop unregisters the adapter and its session
func (a *CLIAdapter) AdapterStop() error {
	if a.sessionID != "" {
		a.adapterManager.AdapterRemove(a.sessionID)
		a.sessionID = ""
	}
	a.logger.Info(context.Background(), "CLI adapter stopped", nil)
	return nil
}

// GetType returns the type of the adapter
func (a *CLIAdapter) GetType() string {
	return "cli"
}

// CommandProcess runs a command through the adapter manager
func (a *CLIAdapter) CommandProcess(cmd model.Command) (interface{}, error) {
	return a.adapterManager.CommandRun(a.sessionID, cmd)
}

// ProcessInput converts an input line into a command and runs it
func (a *CLIAdapter) ProcessInput(input string) (interface{}, error) {
	cmd, err := a.parseCommand(input)
	if err != nil {
		return nil, err
	}
	return a.CommandProcess(cmd)
}

// parseCommand splits an input line into scope, operation, and arguments.
// Double quotes group words into a single argument.
func (a *CLIAdapter) parseCommand(input string) (model.Command, error) {
	args := splitArgs(input)
	if len(args) == 0 {
		return model.Command{}, fmt.Errorf("empty command")
	}

	// Bare "exit" and "quit" work without spelling out the system scope
	if len(args) == 1 {
		switch word := strings.ToLower(args[0]); word {
		case "exit", "quit":
			return model.Command{Scope: "system", Operation: word, Args: []string{}}, nil
		}
	}

	cmd := model.Command{
		Scope:     strings.ToLower(args[0]),
		Operation: "",
		Args:      []string{},
	}
	if len(args) > 1 {
		cmd.Operation = strings.ToLower(args[1])
		cmd.Args = args[2:]
	}
	return cmd, nil
}

// splitArgs tokenizes a command line, honoring double-quoted arguments
func splitArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
			} else {
				current.WriteRune(char)
			}
		default:
			current.WriteRune(char)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// PromptGet builds the prompt from the session's current user and map
func (a *CLIAdapter) PromptGet() string {
	session, exists := a.adapterManager.SessionGet(a.sessionID)
	if !exists || session.User == nil {
		return "> "
	}
	if session.Mindmap == nil {
		return fmt.Sprintf("%s > ", session.User.Username)
	}
	return fmt.Sprintf("%s @ %s > ", session.User.Username, session.Mindmap.Name)
}
