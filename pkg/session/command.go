package session

import "strings"

// Command is one of the fixed session keywords.
type Command int

const (
	CommandNone Command = iota
	CommandHelp
	CommandHistory
	CommandClear
	CommandSave
	CommandStats
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandHistory:
		return "history"
	case CommandClear:
		return "clear"
	case CommandSave:
		return "save"
	case CommandStats:
		return "stats"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// ParseCommand matches input against the keyword set, ignoring case and
// surrounding whitespace. Anything else is a prompt.
func ParseCommand(input string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "help":
		return CommandHelp, true
	case "history":
		return CommandHistory, true
	case "clear":
		return CommandClear, true
	case "save":
		return CommandSave, true
	case "stats":
		return CommandStats, true
	case "quit":
		return CommandQuit, true
	default:
		return CommandNone, false
	}
}
