package session

import (
	"context"
	"errors"
	"fmt"

	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
)

// Command wraps the model.Command and adds session-specific validation
type Command struct {
	command model.Command
	logger  *log.Logger
}

// NewCommand creates a new session Command from a model.Command
func NewCommand(cmd model.Command, logger *log.Logger) Command {
	return Command{command: cmd, logger: logger}
}

// Validate checks if the command is valid
func (c *Command) Validate() error {
	if c.command.Scope == "" {
		return errors.New("command scope is required")
	}
	return c.validateScopeAndOperation()
}

// validateScopeAndOperation checks if the scope and operation are valid
func (c *Command) validateScopeAndOperation() error {
	switch c.command.Scope {
	case "user":
		return c.validateUserCommand()
	case "map":
		return c.validateMapCommand()
	case "node":
		return c.validateNodeCommand()
	case "connection":
		return c.validateConnectionCommand()
	case "system":
		return c.validateSystemCommand()
	default:
		c.logger.Debug(context.Background(), "Invalid command scope", log.Fields{"scope": c.command.Scope})
		return fmt.Errorf("invalid command scope: %s", c.command.Scope)
	}
}

func (c *Command) validateUserCommand() error {
	switch c.command.Operation {
	case "add":
		if len(c.command.Args) < 1 || len(c.command.Args) > 2 {
			return errors.New("user add command requires 1 or 2 arguments: <username> [password]")
		}
	case "select":
		if len(c.command.Args) < 1 || len(c.command.Args) > 2 {
			return errors.New("user select command requires 1 or 2 arguments: <username> [password]")
		}
	case "update":
		if len(c.command.Args) < 1 || len(c.command.Args) > 3 {
			return errors.New("user update command requires 1 to 3 arguments: <username> [new_username] [new_password]")
		}
	case "delete":
		if len(c.command.Args) != 1 {
			return errors.New("user delete command requires 1 argument: <username>")
		}
	case "list":
		if len(c.command.Args) != 0 {
			return errors.New("user list command does not accept any arguments")
		}
	default:
		return fmt.Errorf("invalid user operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateMapCommand() error {
	switch c.command.Operation {
	case "add":
		if len(c.command.Args) > 1 {
			return errors.New("map add command requires 0 or 1 argument: [map_name]")
		}
	case "select", "delete":
		if len(c.command.Args) != 1 {
			return fmt.Errorf("map %s command requires 1 argument: <map_name>", c.command.Operation)
		}
	case "list", "view", "undo", "redo":
		if len(c.command.Args) != 0 {
			return fmt.Errorf("map %s command does not accept any arguments", c.command.Operation)
		}
	case "export":
		if len(c.command.Args) > 1 {
			return errors.New("map export command requires 0 or 1 argument: [filename]")
		}
	case "import":
		if len(c.command.Args) != 1 {
			return errors.New("map import command requires 1 argument: <filename>")
		}
	default:
		return fmt.Errorf("invalid map operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateNodeCommand() error {
	switch c.command.Operation {
	case "add":
		if len(c.command.Args) < 1 {
			return errors.New("node add command requires at least 1 argument: <parent> [text]")
		}
	case "update":
		if len(c.command.Args) < 2 {
			return errors.New("node update command requires at least 2 arguments: <node> <text>|<field>:<value>...")
		}
	case "move":
		if len(c.command.Args) != 2 {
			return errors.New("node move command requires 2 arguments: <node> <new_parent>")
		}
	case "delete":
		if len(c.command.Args) < 1 || len(c.command.Args) > 2 {
			return errors.New("node delete command requires 1 or 2 arguments: <node> [--cascade]")
		}
	case "find":
		if len(c.command.Args) != 1 {
			return errors.New("node find command requires 1 argument: <query>")
		}
	default:
		return fmt.Errorf("invalid node operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateConnectionCommand() error {
	switch c.command.Operation {
	case "add":
		if len(c.command.Args) < 2 || len(c.command.Args) > 4 {
			return errors.New("connection add command requires 2 to 4 arguments: <start> <end> [label] [color]")
		}
	case "delete":
		if len(c.command.Args) != 2 {
			return errors.New("connection delete command requires 2 arguments: <start> <end>")
		}
	case "list":
		if len(c.command.Args) != 0 {
			return errors.New("connection list command does not accept any arguments")
		}
	default:
		return fmt.Errorf("invalid connection operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateSystemCommand() error {
	switch c.command.Operation {
	case "exit", "quit":
		if len(c.command.Args) != 0 {
			return fmt.Errorf("system %s command does not accept any arguments", c.command.Operation)
		}
	default:
		return fmt.Errorf("invalid system operation: %s", c.command.Operation)
	}
	return nil
}
