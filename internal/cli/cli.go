// Package cli implements the interactive command loop of the editor.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"pagestudio/local-app/internal/editor"
	"pagestudio/local-app/internal/layout"
	"pagestudio/local-app/internal/log"
	"pagestudio/local-app/internal/storage"
	"pagestudio/local-app/internal/ui"
)

type CLI struct {
	Editor *editor.Editor
	Layout *layout.Controller
	Store  *storage.SQLiteStore
	UI     *ui.UI
	RL     *readline.Instance
	Logger *log.Logger
	Prompt string

	project string
}

func NewCLI(ed *editor.Editor, store *storage.SQLiteStore, u *ui.UI, rl *readline.Instance, logger *log.Logger) *CLI {
	c := &CLI{
		Editor: ed,
		Layout: layout.NewController(),
		Store:  store,
		UI:     u,
		RL:     rl,
		Logger: logger,
	}
	c.UpdatePrompt()
	return c
}

// UpdatePrompt rebuilds the readline prompt from the open project and the
// current selection.
func (c *CLI) UpdatePrompt() {
	project := c.project
	if project == "" {
		project = "untitled"
	}
	c.Prompt = c.UI.GetPromptString(project, c.Editor.Selected())
	if c.RL != nil {
		c.RL.SetPrompt(c.Prompt)
	}
}

// Run reads and executes one command line.
func (c *CLI) Run() error {
	line, err := c.RL.Readline()
	if err == readline.ErrInterrupt {
		return err
	} else if err == io.EOF {
		return err
	} else if err != nil {
		return err
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	if c.Logger != nil {
		if err := c.Logger.LogCommand(line); err != nil {
			c.UI.Warning(fmt.Sprintf("Failed to log command: %v", err))
		}
	}

	args := c.ParseArgs(line)
	err = c.ExecuteCommand(args)
	c.UpdatePrompt()
	return err
}

// ParseArgs splits a command line into arguments, honoring double quotes.
func (c *CLI) ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if currentArg.Len() > 0 {
					args = append(args, currentArg.String())
					currentArg.Reset()
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}

	return args
}

func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "add":
		return c.handleAdd(args[1:])
	case "del":
		return c.handleDelete(args[1:])
	case "move":
		return c.handleMove(args[1:])
	case "reorder":
		return c.handleReorder(args[1:])
	case "select":
		return c.handleSelect(args[1:])
	case "set":
		return c.handleSet(args[1:])
	case "corner":
		return c.handleCorner(args[1:])
	case "name":
		return c.handleName(args[1:])
	case "text":
		return c.handleText(args[1:])
	case "tag":
		return c.handleTag(args[1:])
	case "attr":
		return c.handleAttr(args[1:])
	case "key":
		return c.handleKey(args[1:])
	case "master":
		return c.handleMaster(args[1:])
	case "css":
		return c.handleCSS(args[1:])
	case "js":
		return c.handleJS(args[1:])
	case "collapse":
		return c.handleCollapse(args[1:])
	case "show":
		return c.handleShow(args[1:])
	case "tree":
		return c.handleTree(args[1:])
	case "props":
		return c.handleProps(args[1:])
	case "panels":
		return c.handlePanels(args[1:])
	case "undo":
		return c.handleUndo(args[1:])
	case "redo":
		return c.handleRedo(args[1:])
	case "export":
		return c.handleExport(args[1:])
	case "lua":
		return c.handleLua(args[1:])
	case "import":
		return c.handleImport(args[1:])
	case "save":
		return c.handleSave(args[1:])
	case "load":
		return c.handleLoad(args[1:])
	case "project":
		return c.handleProject(args[1:])
	case "help":
		return c.handleHelp(args[1:])
	case "exit", "quit":
		c.UI.Println("Exiting...")
		if err := c.RL.Close(); err != nil {
			c.UI.Warning(fmt.Sprintf("Error closing readline: %v", err))
		}
		return fmt.Errorf("exit requested: %w", io.EOF)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (c *CLI) printHelp(command string) {
	if command == "" {
		c.UI.Println("Available commands:")
		for cmd := range commandHelp {
			c.UI.Printf("  %s\n", cmd)
		}
		c.UI.Println("\nUse 'help <command>' for more information about a specific command.")
	} else if help, ok := commandHelp[command]; ok {
		c.UI.Println(help)
	} else {
		c.UI.Printf("Unknown command: %s\n", command)
	}
}
