package repl

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ValentinKolb/tristore/lib/present"
	"github.com/ValentinKolb/tristore/lib/store"
	"github.com/ValentinKolb/tristore/lib/store/bstore"
	"github.com/ValentinKolb/tristore/lib/store/fstore"
	"github.com/ValentinKolb/tristore/lib/store/ostore"
)

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// State is the REPL's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// Option configures a REPL.
type Option func(*REPL)

func WithFileStore(files store.IFileStore) Option {
	return func(r *REPL) {
		r.files = files
	}
}

func WithObjectStore(objects store.IObjectStore) Option {
	return func(r *REPL) {
		r.objects = objects
	}
}

func WithBlockStore(blocks store.IBlockStore) Option {
	return func(r *REPL) {
		r.blocks = blocks
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *REPL) {
		r.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(r *REPL) {
		r.metrics = m
	}
}

// WithBanner prints the welcome line before the first prompt.
func WithBanner(enabled bool) Option {
	return func(r *REPL) {
		r.banner = enabled
	}
}

// --------------------------------------------------------------------------
// REPL
// --------------------------------------------------------------------------

// REPL reads commands line by line, routes them to its stores and reports
// every result through a present.Presenter. It owns its stores exclusively
// and processes exactly one command before reading the next line.
type REPL struct {
	in        *bufio.Reader
	presenter present.Presenter
	files     store.IFileStore
	objects   store.IObjectStore
	blocks    store.IBlockStore
	logger    *slog.Logger
	metrics   *Metrics
	banner    bool
	state     State
}

// New creates a REPL reading from in and writing through p.
// Stores default to empty ones with the default block geometry.
func New(in io.Reader, p present.Presenter, opts ...Option) *REPL {
	r := &REPL{
		in:        bufio.NewReader(in),
		presenter: p,
		state:     StateRunning,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.files == nil {
		r.files = fstore.NewFileStore()
	}
	if r.objects == nil {
		r.objects = ostore.NewObjectStore()
	}
	if r.blocks == nil {
		r.blocks = bstore.NewDefaultBlockStore()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.metrics == nil {
		r.metrics = NewMetrics()
	}
	r.metrics.registerGauges(r.files, r.objects, r.blocks)
	return r
}

// State returns the current lifecycle state.
func (r *REPL) State() State {
	return r.state
}

// Run loops prompt -> read -> parse -> dispatch -> present until "exit", end
// of input or cancellation of ctx. Command and input errors are reported and
// swallowed; only a failing presenter ends Run with an error.
func (r *REPL) Run(ctx context.Context) error {
	r.logger.Info("console started",
		"blocks", r.blocks.Cap(),
		"block_size", r.blocks.BlockSize())
	defer func() {
		r.state = StateTerminated
		r.logger.Info("console terminated")
	}()

	if r.banner {
		if err := r.presenter.Present(present.Banner()); err != nil {
			return err
		}
	}

	for r.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if err := r.presenter.Prompt(); err != nil {
			return err
		}

		line, err := r.in.ReadString('\n')
		switch {
		case errors.Is(err, io.EOF):
			// a last line without newline is still executed
			if line != "" {
				if err := r.Execute(line); err != nil {
					return err
				}
			}
			r.state = StateTerminated
			continue
		case err != nil:
			r.logger.Warn("failed to read input", "err", err)
			if err := r.presenter.Present(present.InputError()); err != nil {
				return err
			}
			continue
		}

		if err := r.Execute(line); err != nil {
			return err
		}
	}
	return nil
}

// Execute parses and applies a single line. An "exit" line moves the REPL
// to StateTerminated. The returned error is a presenter failure only.
func (r *REPL) Execute(line string) error {
	cmd, err := Parse(line)
	if err != nil {
		var perr *ParseError
		if !errors.As(err, &perr) {
			return err
		}
		r.metrics.observeParse(perr)
		r.logger.Debug("rejected command", "err", perr)
		switch perr.Kind {
		case ParseUnknownCommand:
			return r.presenter.Present(present.UnknownCommand())
		case ParseInvalidSubCommand:
			return r.presenter.Present(present.InvalidSubCommand(string(perr.Engine)))
		default:
			// a malformed block index is silently ignored
			return nil
		}
	}

	switch cmd.Kind {
	case CmdEmpty:
		return nil
	case CmdExit:
		r.state = StateTerminated
		return nil
	case CmdHelp:
		return r.presenter.Present(helpMessages()...)
	}

	var msgs []present.Message
	switch cmd.Engine {
	case EngineFile:
		msgs, err = r.dispatchFile(cmd)
	case EngineObject:
		msgs, err = r.dispatchObject(cmd)
	case EngineBlock:
		msgs, err = r.dispatchBlock(cmd)
	}

	r.metrics.observeStore(cmd, err)
	r.logger.Debug("dispatched command",
		"engine", cmd.Engine,
		"verb", cmd.Verb,
		"outcome", store.CodeOf(err))

	return r.presenter.Present(msgs...)
}

// --------------------------------------------------------------------------
// Dispatch per engine
// --------------------------------------------------------------------------

// The dispatch functions return the messages to present plus the store error
// (if any) for metrics and logging. The error is already reflected in the messages.

func (r *REPL) dispatchFile(cmd Command) ([]present.Message, error) {
	path := cmd.Key()
	switch cmd.Verb {
	case VerbCreate:
		r.files.Create(path, cmd.Data())
		return one(present.FileCreated(path)), nil
	case VerbRead:
		data, err := r.files.Read(path)
		if err != nil {
			return one(present.FileNotFound(path)), err
		}
		return one(present.FileRead(path, data)), nil
	case VerbWrite:
		if err := r.files.Write(path, cmd.Data()); err != nil {
			return one(present.FileNotFound(path)), err
		}
		return one(present.FileUpdated(path)), nil
	case VerbDelete:
		if err := r.files.Delete(path); err != nil {
			return one(present.FileNotFound(path)), err
		}
		return one(present.FileDeleted(path)), nil
	default:
		return listing("Files:", r.files.List()), nil
	}
}

func (r *REPL) dispatchObject(cmd Command) ([]present.Message, error) {
	id := cmd.Key()
	switch cmd.Verb {
	case VerbCreate:
		r.objects.Create(id, cmd.Data(), cmd.Attrs)
		return one(present.ObjectCreated(id)), nil
	case VerbRead:
		obj, err := r.objects.Read(id)
		if err != nil {
			return one(present.ObjectNotFound(id)), err
		}
		return one(present.ObjectRead(id, obj)), nil
	case VerbWrite:
		if err := r.objects.Write(id, cmd.Data()); err != nil {
			return one(present.ObjectNotFound(id)), err
		}
		return one(present.ObjectUpdated(id)), nil
	case VerbDelete:
		if err := r.objects.Delete(id); err != nil {
			return one(present.ObjectNotFound(id)), err
		}
		return one(present.ObjectDeleted(id)), nil
	default:
		return listing("Objects:", r.objects.List()), nil
	}
}

func (r *REPL) dispatchBlock(cmd Command) ([]present.Message, error) {
	switch cmd.Verb {
	case VerbWrite:
		err := r.blocks.Write(cmd.Index, cmd.Data())
		switch store.CodeOf(err) {
		case store.RetCSuccess:
			return one(present.BlockWritten(cmd.Index)), nil
		case store.RetCTooLarge:
			return one(present.BlockTooLarge(r.blocks.BlockSize())), err
		default:
			return one(present.BlockInvalidIndex()), err
		}
	case VerbRead:
		data, err := r.blocks.Read(cmd.Index)
		if err != nil {
			return one(present.BlockEmpty(cmd.Index)), err
		}
		return one(present.BlockRead(cmd.Index, data)), nil
	case VerbDelete:
		if err := r.blocks.Delete(cmd.Index); err != nil {
			return one(present.BlockInvalidIndex()), err
		}
		return one(present.BlockCleared(cmd.Index)), nil
	default:
		slots := r.blocks.List()
		msgs := make([]present.Message, 0, len(slots)+1)
		msgs = append(msgs, present.Header("Blocks:"))
		for _, s := range slots {
			msgs = append(msgs, present.BlockSlot(s.Index, s.Data, s.Occupied))
		}
		return msgs, nil
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func one(m present.Message) []present.Message {
	return []present.Message{m}
}

// listing renders a header followed by one item per entry.
func listing(title string, entries []string) []present.Message {
	msgs := make([]present.Message, 0, len(entries)+1)
	msgs = append(msgs, present.Header(title))
	for _, e := range entries {
		msgs = append(msgs, present.ListItem(e))
	}
	return msgs
}
