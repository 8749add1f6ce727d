package present

import (
	"fmt"
	"strconv"
)

// --------------------------------------------------------------------------
// Segment helpers
// --------------------------------------------------------------------------

func text(s string) Segment    { return Segment{Text: s, Role: RoleText} }
func subject(s string) Segment { return Segment{Text: s, Role: RoleSubject} }
func value(s string) Segment   { return Segment{Text: s, Role: RoleValue} }
func muted(s string) Segment   { return Segment{Text: s, Role: RoleMuted} }

func msg(kind Kind, segs ...Segment) Message {
	return Message{Kind: kind, Segments: segs}
}

func idx(i uint64) string {
	return strconv.FormatUint(i, 10)
}

// --------------------------------------------------------------------------
// General
// --------------------------------------------------------------------------

// Banner is printed once when the console starts.
func Banner() Message {
	return msg(KindHeader, text("Welcome to Storage CLI (file, object, block). Type 'help' for commands, 'exit' to quit."))
}

func UnknownCommand() Message {
	return msg(KindFailure, text("Unknown command, type 'help'"))
}

// InvalidSubCommand reports an unknown verb (or missing arguments) for engine.
func InvalidSubCommand(engine string) Message {
	return msg(KindFailure, text("Invalid "), subject(engine), text(" command"))
}

func InputError() Message {
	return msg(KindFailure, text("Error reading input."))
}

// Header starts a listing, e.g. "Files:".
func Header(title string) Message {
	return msg(KindHeader, text(title))
}

// ListItem is one " - <entry>" line of a listing.
func ListItem(entry string) Message {
	return msg(KindInfo, muted(" - "), subject(entry))
}

// HelpLine is one line of the command catalogue.
func HelpLine(line string) Message {
	return msg(KindInfo, text(line))
}

// --------------------------------------------------------------------------
// File store events
// --------------------------------------------------------------------------

func FileCreated(path string) Message {
	return msg(KindSuccess, text("File created: "), subject(path))
}

func FileRead(path, data string) Message {
	return msg(KindInfo, text("Reading "), subject(path), text(": "), value(data))
}

func FileUpdated(path string) Message {
	return msg(KindSuccess, text("File updated: "), subject(path))
}

func FileDeleted(path string) Message {
	return msg(KindSuccess, text("File deleted: "), subject(path))
}

func FileNotFound(path string) Message {
	return msg(KindFailure, text("File not found: "), subject(path))
}

// --------------------------------------------------------------------------
// Object store events
// --------------------------------------------------------------------------

func ObjectCreated(id string) Message {
	return msg(KindSuccess, text("Object created: "), subject(id))
}

// ObjectRead renders the record with its debug form (see store.Object.String).
func ObjectRead(id string, record fmt.Stringer) Message {
	return msg(KindInfo, text("Reading "), subject(id), text(": "), value(record.String()))
}

func ObjectUpdated(id string) Message {
	return msg(KindSuccess, text("Object updated: "), subject(id))
}

func ObjectDeleted(id string) Message {
	return msg(KindSuccess, text("Object deleted: "), subject(id))
}

func ObjectNotFound(id string) Message {
	return msg(KindFailure, text("Object not found: "), subject(id))
}

// --------------------------------------------------------------------------
// Block store events
// --------------------------------------------------------------------------

func BlockWritten(index uint64) Message {
	return msg(KindSuccess, text("Data written to block "), subject(idx(index)))
}

func BlockRead(index uint64, data string) Message {
	return msg(KindInfo, text("Reading block "), subject(idx(index)), text(": "), value(data))
}

func BlockCleared(index uint64) Message {
	return msg(KindSuccess, text("Block "), subject(idx(index)), text(" cleared"))
}

func BlockEmpty(index uint64) Message {
	return msg(KindFailure, text("Block "), subject(idx(index)), text(" is empty or invalid"))
}

func BlockInvalidIndex() Message {
	return msg(KindFailure, text("Invalid block index!"))
}

func BlockTooLarge(maxBytes int) Message {
	return msg(KindFailure, text("Data too large for block (max "), subject(strconv.Itoa(maxBytes)), text(" bytes)"))
}

// BlockSlot is one line of a block listing: " - Block i: data" or " - Block i: empty".
func BlockSlot(index uint64, data string, occupied bool) Message {
	content := muted("empty")
	if occupied {
		content = value(data)
	}
	return msg(KindInfo, muted(" - "), text("Block "), subject(idx(index)), text(": "), content)
}
