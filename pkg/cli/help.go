package cli

import (
	"fmt"
	"strings"
)

// helpEntries maps scope -> operation -> usage line
var helpEntries = map[string]map[string]string{
	"user": {
		"add":    "user add <username> [password] - create a new user profile",
		"select": "user select <username> [password] - switch to a user profile",
		"update": "user update <username> [new_username] [new_password] - change a profile",
		"delete": "user delete <username> - remove a profile and its mindmaps",
		"list":   "user list - list all profiles",
	},
	"map": {
		"add":    "map add [name] - create a new mindmap and select it",
		"select": "map select <name> - select a mindmap",
		"list":   "map list - list your mindmaps",
		"delete": "map delete <name> - remove a mindmap",
		"view":   "map view - print the current mindmap as a tree",
		"export": "map export [filename] - write the current mindmap to a JSON file",
		"import": "map import <filename> - read a mindmap from a JSON file",
		"undo":   "map undo - revert the last change",
		"redo":   "map redo - reapply an undone change",
	},
	"node": {
		"add":    "node add <parent> [text] - add a child node",
		"update": "node update <node> <text>|<field>:<value>... - change text, style, or position",
		"move":   "node move <node> <new_parent> - reparent a node",
		"delete": "node delete <node> [--cascade] - delete a node; --cascade removes its subtree",
		"find":   "node find <query> - list nodes whose text matches",
	},
	"connection": {
		"add":    "connection add <start> <end> [label] [color] - connect two nodes",
		"delete": "connection delete <start> <end> - remove a connection",
		"list":   "connection list - list connections in the current mindmap",
	},
	"system": {
		"exit": "exit - quit the application",
		"quit": "quit - quit the application",
	},
}

// scopeOrder fixes the print order of help scopes
var scopeOrder = []string{"user", "map", "node", "connection", "system"}

// printHelp prints usage for everything, a scope, or a single operation
func (c *CLI) printHelp(args []string) {
	switch len(args) {
	case 0:
		for _, scope := range scopeOrder {
			fmt.Printf("%s commands:\n", scope)
			c.printScopeHelp(scope)
		}
	case 1:
		scope := strings.ToLower(args[0])
		if _, ok := helpEntries[scope]; !ok {
			fmt.Printf("Unknown scope: %s\n", scope)
			return
		}
		c.printScopeHelp(scope)
	default:
		scope := strings.ToLower(args[0])
		operation := strings.ToLower(args[1])
		entry, ok := helpEntries[scope][operation]
		if !ok {
			fmt.Printf("Unknown command: %s %s\n", scope, operation)
			return
		}
		fmt.Println(entry)
	}
}

// printScopeHelp prints all usage lines of one scope
func (c *CLI) printScopeHelp(scope string) {
	entries := helpEntries[scope]
	// Keep a stable order per scope
	operations := []string{"add", "select", "update", "move", "delete", "list", "view", "export", "import", "undo", "redo", "find", "exit", "quit"}
	for _, operation := range operations {
		if entry, ok := entries[operation]; ok {
			fmt.Printf("  %s\n", entry)
		}
	}
}
