package session

import (
	"testing"

	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
)

func testLogger(t *testing.T) *log.Logger {
	t.Helper()
	cfg := &model.Config{
		LogFolder:  t.TempDir(),
		CommandLog: "command.log",
		ErrorLog:   "error.log",
		InfoLog:    "info.log",
	}
	logger, err := log.NewLogger(cfg, log.LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	return logger
}

func TestCommandValidate(t *testing.T) {
	logger := testLogger(t)

	cases := []struct {
		name    string
		cmd     model.Command
		wantErr bool
	}{
		{"missing scope", model.Command{Operation: "list"}, true},
		{"unknown scope", model.Command{Scope: "banana", Operation: "list"}, true},

		{"user add", model.Command{Scope: "user", Operation: "add", Args: []string{"alice", "secret"}}, false},
		{"user add too many args", model.Command{Scope: "user", Operation: "add", Args: []string{"a", "b", "c"}}, true},
		{"user unknown op", model.Command{Scope: "user", Operation: "promote", Args: []string{"alice"}}, true},

		{"map add unnamed", model.Command{Scope: "map", Operation: "add"}, false},
		{"map select no name", model.Command{Scope: "map", Operation: "select"}, true},
		{"map undo", model.Command{Scope: "map", Operation: "undo"}, false},
		{"map undo with args", model.Command{Scope: "map", Operation: "undo", Args: []string{"x"}}, true},
		{"map import", model.Command{Scope: "map", Operation: "import", Args: []string{"trip.json"}}, false},

		{"node add", model.Command{Scope: "node", Operation: "add", Args: []string{"root", "idea"}}, false},
		{"node add no parent", model.Command{Scope: "node", Operation: "add"}, true},
		{"node update", model.Command{Scope: "node", Operation: "update", Args: []string{"root-1", "color:#fff"}}, false},
		{"node move", model.Command{Scope: "node", Operation: "move", Args: []string{"root-1", "root-2"}}, false},
		{"node move one arg", model.Command{Scope: "node", Operation: "move", Args: []string{"root-1"}}, true},
		{"node delete cascade", model.Command{Scope: "node", Operation: "delete", Args: []string{"root-1", "--cascade"}}, false},

		{"connection add", model.Command{Scope: "connection", Operation: "add", Args: []string{"root-1", "root-2", "label", "#fff"}}, false},
		{"connection add one arg", model.Command{Scope: "connection", Operation: "add", Args: []string{"root-1"}}, true},
		{"connection delete", model.Command{Scope: "connection", Operation: "delete", Args: []string{"root-1", "root-2"}}, false},

		{"system exit", model.Command{Scope: "system", Operation: "exit"}, false},
		{"system unknown op", model.Command{Scope: "system", Operation: "reboot"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := NewCommand(tc.cmd, logger)
			err := cmd.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate accepted an invalid command")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate rejected a valid command: %v", err)
			}
		})
	}
}
