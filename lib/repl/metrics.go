package repl

import (
	"fmt"
	"io"

	"github.com/ValentinKolb/tristore/lib/store"
	"github.com/VictoriaMetrics/metrics"
)

// outcomeParseError labels commands rejected by the parser.
const outcomeParseError = "parse_error"

// Metrics counts dispatched commands by engine, verb and outcome and exposes
// gauges for the size of each store. Every Metrics owns its own metrics.Set,
// so several consoles in one process do not share counters.
type Metrics struct {
	set *metrics.Set
}

// NewMetrics creates an empty metrics set.
func NewMetrics() *Metrics {
	return &Metrics{set: metrics.NewSet()}
}

// observe increments the counter for one command. Label values come from a
// fixed vocabulary only; raw user tokens are never used as labels.
func (m *Metrics) observe(engine Engine, verb Verb, outcome string) {
	m.set.GetOrCreateCounter(counterName(engine, verb, outcome)).Inc()
}

func counterName(engine Engine, verb Verb, outcome string) string {
	e, v := string(engine), string(verb)
	if e == "" {
		e = "none"
	}
	if v == "" {
		v = "none"
	}
	return fmt.Sprintf(`tristore_commands_total{engine=%q,verb=%q,outcome=%q}`, e, v, outcome)
}

// observeStore records a store call by its return code.
func (m *Metrics) observeStore(cmd Command, err error) {
	m.observe(cmd.Engine, cmd.Verb, store.CodeOf(err).String())
}

// observeParse records a line the parser rejected.
func (m *Metrics) observeParse(perr *ParseError) {
	engine := perr.Engine
	if perr.Kind == ParseUnknownCommand {
		engine = EngineNone
	}
	m.observe(engine, "", outcomeParseError)
}

// registerGauges exposes the current store sizes.
func (m *Metrics) registerGauges(files store.IFileStore, objects store.IObjectStore, blocks store.IBlockStore) {
	m.set.GetOrCreateGauge(`tristore_files`, func() float64 {
		return float64(files.Len())
	})
	m.set.GetOrCreateGauge(`tristore_objects`, func() float64 {
		return float64(objects.Len())
	})
	m.set.GetOrCreateGauge(`tristore_blocks_occupied`, func() float64 {
		n := 0
		for _, s := range blocks.List() {
			if s.Occupied {
				n++
			}
		}
		return float64(n)
	})
	m.set.GetOrCreateGauge(`tristore_blocks_capacity`, func() float64 {
		return float64(blocks.Cap())
	})
}

// CommandCount returns how often engine/verb finished with outcome.
func (m *Metrics) CommandCount(engine Engine, verb Verb, outcome string) uint64 {
	return m.set.GetOrCreateCounter(counterName(engine, verb, outcome)).Get()
}

// WritePrometheus writes all counters and gauges in Prometheus text format.
func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}
