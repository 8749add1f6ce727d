package repl

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Command Types
// --------------------------------------------------------------------------

// Engine names the store a command is routed to.
type Engine string

const (
	EngineNone   Engine = ""
	EngineFile   Engine = "file"
	EngineObject Engine = "object"
	EngineBlock  Engine = "block"
)

// Verb is the operation applied to an engine.
type Verb string

const (
	VerbCreate Verb = "create"
	VerbRead   Verb = "read"
	VerbWrite  Verb = "write"
	VerbDelete Verb = "delete"
	VerbList   Verb = "list"
)

// CommandKind is the top-level shape of a parsed line.
type CommandKind int

const (
	CmdEmpty CommandKind = iota // blank line, reprompt
	CmdExit                     // terminate the loop
	CmdHelp                     // print the catalogue
	CmdStore                    // engine + verb
)

// Command is the structured form of one input line.
type Command struct {
	Kind   CommandKind
	Engine Engine
	Verb   Verb
	// Args holds the positional arguments after the verb, truncated to the
	// verb's arity. For block verbs Args[0] is the raw index token.
	Args []string
	// Index is the parsed block index (block read, write and delete only).
	Index uint64
	// Attrs holds the key=value pairs of "object create". Never nil for that verb.
	Attrs map[string]string
}

// Key returns the path or id argument (Args[0]) or "" if there is none.
func (c Command) Key() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Data returns the payload argument (Args[1]) or "" if there is none.
func (c Command) Data() string {
	if len(c.Args) < 2 {
		return ""
	}
	return c.Args[1]
}

// --------------------------------------------------------------------------
// Parse Errors
// --------------------------------------------------------------------------

// ParseErrorKind classifies a line that matches no command.
type ParseErrorKind int

const (
	ParseUnknownCommand    ParseErrorKind = iota // unrecognised top-level token
	ParseInvalidSubCommand                       // unknown verb or too few arguments
	ParseBadIndex                                // block index is not a non-negative integer
)

// ParseError is returned by Parse for lines that match no command.
type ParseError struct {
	Kind   ParseErrorKind
	Engine Engine // set for ParseInvalidSubCommand and ParseBadIndex
	Token  string // offending token, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseUnknownCommand:
		return fmt.Sprintf("unknown command %q", e.Token)
	case ParseInvalidSubCommand:
		return fmt.Sprintf("invalid %s command", e.Engine)
	case ParseBadIndex:
		return fmt.Sprintf("invalid %s index %q", e.Engine, e.Token)
	default:
		return "parse error"
	}
}

// --------------------------------------------------------------------------
// Grammar
// --------------------------------------------------------------------------

// arities lists, per engine, the verbs it accepts and the minimum number of
// tokens (engine and verb included) each one needs.
var arities = map[Engine]map[Verb]int{
	EngineFile: {
		VerbCreate: 4,
		VerbRead:   3,
		VerbWrite:  4,
		VerbDelete: 3,
		VerbList:   2,
	},
	EngineObject: {
		VerbCreate: 4,
		VerbRead:   3,
		VerbWrite:  4,
		VerbDelete: 3,
		VerbList:   2,
	},
	EngineBlock: {
		VerbRead:   3,
		VerbWrite:  4,
		VerbDelete: 3,
		VerbList:   2,
	},
}

// Parse turns one raw input line into a Command.
//
// Tokens are split on runs of whitespace. A blank line is CmdEmpty. Tokens
// past a verb's arity are ignored, except for "object create" where each one
// containing '=' becomes an attribute (split on the first '=', empty keys and
// tokens without '=' are dropped, the last duplicate wins).
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{Kind: CmdEmpty}, nil
	}

	switch tokens[0] {
	case "exit":
		return Command{Kind: CmdExit}, nil
	case "help":
		return Command{Kind: CmdHelp}, nil
	}

	engine := Engine(tokens[0])
	verbs, ok := arities[engine]
	// a bare engine token is not a command at all
	if !ok || len(tokens) < 2 {
		return Command{}, &ParseError{Kind: ParseUnknownCommand, Token: tokens[0]}
	}

	verb := Verb(tokens[1])
	arity, ok := verbs[verb]
	if !ok || len(tokens) < arity {
		return Command{}, &ParseError{Kind: ParseInvalidSubCommand, Engine: engine, Token: tokens[1]}
	}

	cmd := Command{
		Kind:   CmdStore,
		Engine: engine,
		Verb:   verb,
		Args:   tokens[2:arity],
	}

	if engine == EngineBlock && verb != VerbList {
		// one leading '+' is allowed, any other sign or non-digit is not
		index, err := strconv.ParseUint(strings.TrimPrefix(cmd.Args[0], "+"), 10, 64)
		if err != nil {
			return Command{}, &ParseError{Kind: ParseBadIndex, Engine: engine, Token: cmd.Args[0]}
		}
		cmd.Index = index
	}

	if engine == EngineObject && verb == VerbCreate {
		cmd.Attrs = parseAttrs(tokens[arity:])
	}

	return cmd, nil
}

// parseAttrs collects key=value tokens into a map.
func parseAttrs(tokens []string) map[string]string {
	attrs := make(map[string]string)
	for _, tok := range tokens {
		k, v, found := strings.Cut(tok, "=")
		if !found || k == "" {
			continue
		}
		attrs[k] = v
	}
	return attrs
}
