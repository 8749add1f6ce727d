package present

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

// catalogue returns one of every message, in a fixed order.
func catalogue() []Message {
	return []Message{
		Banner(),
		UnknownCommand(),
		InvalidSubCommand("file"),
		InputError(),
		Header("Files:"),
		ListItem("/a"),
		HelpLine(" file list"),
		FileCreated("/a"),
		FileRead("/a", "hello"),
		FileUpdated("/a"),
		FileDeleted("/a"),
		FileNotFound("/a"),
		ObjectCreated("o1"),
		ObjectRead("o1", stringer(`Object { data: "payload", metadata: {} }`)),
		ObjectUpdated("o1"),
		ObjectDeleted("o1"),
		ObjectNotFound("o1"),
		BlockWritten(2),
		BlockRead(2, "hello"),
		BlockCleared(2),
		BlockEmpty(4),
		BlockInvalidIndex(),
		BlockTooLarge(16),
		BlockSlot(0, "", false),
		BlockSlot(2, "héllo", true),
	}
}

func TestMessageWording(t *testing.T) {
	for _, tc := range []struct {
		msg  Message
		want string
	}{
		{FileCreated("/a"), "File created: /a"},
		{FileRead("/a", "hello"), "Reading /a: hello"},
		{FileUpdated("/a"), "File updated: /a"},
		{FileDeleted("/a"), "File deleted: /a"},
		{FileNotFound("/a"), "File not found: /a"},
		{ObjectCreated("o1"), "Object created: o1"},
		{ObjectUpdated("o1"), "Object updated: o1"},
		{ObjectDeleted("o1"), "Object deleted: o1"},
		{ObjectNotFound("o1"), "Object not found: o1"},
		{BlockWritten(2), "Data written to block 2"},
		{BlockRead(2, "hello"), "Reading block 2: hello"},
		{BlockCleared(3), "Block 3 cleared"},
		{BlockEmpty(4), "Block 4 is empty or invalid"},
		{BlockInvalidIndex(), "Invalid block index!"},
		{BlockTooLarge(16), "Data too large for block (max 16 bytes)"},
		{BlockSlot(1, "", false), " - Block 1: empty"},
		{BlockSlot(2, "hello", true), " - Block 2: hello"},
		{InvalidSubCommand("object"), "Invalid object command"},
		{UnknownCommand(), "Unknown command, type 'help'"},
		{ListItem("o1"), " - o1"},
	} {
		require.Equal(t, tc.want, tc.msg.Text())
	}
}

func TestPlainPresenter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)

	require.NoError(t, p.Prompt())
	require.NoError(t, p.Present(FileCreated("/a"), FileRead("/a", "hello")))
	require.NoError(t, p.Present())

	require.Equal(t, "> File created: /a\nReading /a: hello\n", buf.String())
}

func TestStyledStripsToPlain(t *testing.T) {
	for _, profile := range []termenv.Profile{termenv.TrueColor, termenv.ANSI256, termenv.ANSI, termenv.Ascii} {
		var plain, styled bytes.Buffer
		pp := NewPlain(&plain)
		sp := NewStyled(&styled, WithColorProfile(profile))

		for _, m := range catalogue() {
			require.NoError(t, pp.Prompt())
			require.NoError(t, sp.Prompt())
			require.NoError(t, pp.Present(m))
			require.NoError(t, sp.Present(m))
		}

		require.Equal(t, plain.String(), ansi.Strip(styled.String()), "profile %v", profile)
	}
}

func TestStyledEmitsEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := NewStyled(&buf, WithColorProfile(termenv.ANSI256))

	require.NoError(t, p.Present(FileCreated("/a")))
	require.Contains(t, buf.String(), "\x1b[", "styled output should carry ANSI sequences")
	require.Equal(t, "File created: /a\n", ansi.Strip(buf.String()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPresenterWriteErrors(t *testing.T) {
	for _, p := range []Presenter{NewPlain(failingWriter{}), NewStyled(failingWriter{}, WithColorProfile(termenv.Ascii))} {
		require.Error(t, p.Prompt())
		require.Error(t, p.Present(UnknownCommand()))
	}
}
