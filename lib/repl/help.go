package repl

import "github.com/ValentinKolb/tristore/lib/present"

// helpLines is the command catalogue printed by "help", in grammar order.
var helpLines = []string{
	" file create <path> <data>",
	" file read <path>",
	" file write <path> <data>",
	" file delete <path>",
	" file list",
	" object create <id> <data> key=val ...",
	" object read <id>",
	" object write <id> <data>",
	" object delete <id>",
	" object list",
	" block write <index> <data>",
	" block read <index>",
	" block delete <index>",
	" block list",
}

// helpMessages renders the catalogue under a "Commands:" header.
func helpMessages() []present.Message {
	msgs := make([]present.Message, 0, len(helpLines)+1)
	msgs = append(msgs, present.Header("Commands:"))
	for _, l := range helpLines {
		msgs = append(msgs, present.HelpLine(l))
	}
	return msgs
}
