// Package cli provides the interactive command-line front end. It reads
// lines with readline, hands them to the CLI adapter, and prints results.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"mindcanvas/app/pkg/adapter"
	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/session"
)

// CLI represents the command-line interface
type CLI struct {
	adapter *adapter.CLIAdapter
	rl      *readline.Instance
	stopCh  chan struct{}
	logger  *log.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(cliAdapter *adapter.CLIAdapter, logger *log.Logger) (*CLI, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &CLI{
		adapter: cliAdapter,
		rl:      rl,
		stopCh:  make(chan struct{}),
		logger:  logger,
	}, nil
}

// Run starts the CLI and handles user input until exit
func (c *CLI) Run() error {
	fmt.Println("Welcome to Mindcanvas!")
	fmt.Println("Type 'help' for a list of commands or 'exit' to quit.")

	if err := c.adapter.AdapterStart(); err != nil {
		return fmt.Errorf("failed to start CLI adapter: %w", err)
	}
	defer func() {
		if err := c.adapter.AdapterStop(); err != nil {
			fmt.Printf("Error stopping CLI adapter: %v\n", err)
		}
		c.rl.Close()
	}()

	for {
		select {
		case <-c.stopCh:
			return nil
		default:
		}

		c.rl.SetPrompt(c.adapter.PromptGet())
		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		// Help is handled locally, everything else goes to the adapter
		if strings.HasPrefix(strings.ToLower(line), "help") {
			args := strings.Fields(line)
			c.printHelp(args[1:])
			continue
		}

		result, err := c.adapter.ProcessInput(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			c.logger.Error(context.Background(), "Command failed", log.Fields{"input": line, "error": err})
			continue
		}
		if _, ok := result.(session.ExitRequested); ok {
			return nil
		}
		if result != nil {
			fmt.Println(result)
		}
	}
}

// Stop signals the CLI to shut down after the current read
func (c *CLI) Stop() {
	select {
	case <-c.stopCh:
	default:
		close(c.stopCh)
	}
	c.rl.Close()
}
