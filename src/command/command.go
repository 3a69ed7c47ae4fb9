// Package command parses the photo-album command line into a Command.
//
// The grammar is
//
//	<program> get {albums|images} [--albumId=<int>] [--searchText=<text>]
//
// Action, resource and flag names are matched case-insensitively.
package command

import (
	"strconv"
	"strings"
)

// Action is the verb portion of a command.
type Action int

const (
	Get Action = iota + 1
)

// Resource is the noun portion of a command.
type Resource int

const (
	Albums Resource = iota + 1
	Images
)

// FlagName identifies an optional --name[=value] modifier.
type FlagName int

const (
	AlbumID FlagName = iota + 1
	SearchText
)

var actions = map[string]Action{
	"get": Get,
}

var resources = map[string]Resource{
	"albums": Albums,
	"images": Images,
}

var flagNames = map[string]FlagName{
	"albumid":    AlbumID,
	"searchtext": SearchText,
}

func (a Action) String() string {
	switch a {
	case Get:
		return "Get"
	}
	return "Unknown"
}

func (r Resource) String() string {
	switch r {
	case Albums:
		return "Albums"
	case Images:
		return "Images"
	}
	return "Unknown"
}

func (f FlagName) String() string {
	switch f {
	case AlbumID:
		return "AlbumId"
	case SearchText:
		return "SearchText"
	}
	return "Unknown"
}

// Command is a fully parsed invocation.
// AlbumID values are int, SearchText values are string.
type Command struct {
	Action   Action
	Resource Resource
	Flags    map[FlagName]any
}

// AlbumID returns the --albumId value if it was given.
func (c *Command) AlbumID() (int, bool) {
	v, ok := c.Flags[AlbumID].(int)
	return v, ok
}

// SearchText returns the --searchText value if it was given.
func (c *Command) SearchText() (string, bool) {
	v, ok := c.Flags[SearchText].(string)
	return v, ok
}

// Console is the subset of the console the parser writes to.
type Console interface {
	WriteError(text string)
	WriteErrorLine(text string)
}

const minimumArguments = 2

// Parse converts raw process arguments (program path at index 0) into a Command.
// On failure it writes either the usage instructions or a single-line error to con
// and returns nil. Parsing stops at the first invalid token.
func Parse(args []string, con Console) *Command {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < minimumArguments {
		ShowUserInstructions(con)
		return nil
	}

	action, ok := actions[strings.ToLower(args[0])]
	if !ok {
		con.WriteErrorLine(`Unknown action "` + args[0] + `".`)
		return nil
	}

	resource, ok := resources[strings.ToLower(args[1])]
	if !ok {
		con.WriteErrorLine(`Unknown resource "` + args[1] + `".`)
		return nil
	}

	cmd := &Command{
		Action:   action,
		Resource: resource,
		Flags:    make(map[FlagName]any),
	}

	for _, token := range args[minimumArguments:] {
		if !parseFlag(token, cmd.Flags, con) {
			return nil
		}
	}

	return cmd
}

// parseFlag stores one --name[=value] token into flags. A repeated flag
// overwrites the earlier value.
func parseFlag(token string, flags map[FlagName]any, con Console) bool {
	body, hasPrefix := strings.CutPrefix(token, "--")
	name, value, _ := strings.Cut(body, "=")

	flag, ok := flagNames[strings.ToLower(name)]
	if !hasPrefix || !ok {
		con.WriteErrorLine(`Unknown flag "` + token + `".`)
		return false
	}

	switch flag {
	case AlbumID:
		id, err := strconv.Atoi(value)
		if err != nil || id < 0 {
			con.WriteErrorLine(`Flag "--albumId" must be a number.`)
			return false
		}
		flags[AlbumID] = id
	case SearchText:
		flags[SearchText] = value
	}

	return true
}
