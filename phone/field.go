package phone

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vortex-fintech/go-phone/foundation/logger"
	"github.com/vortex-fintech/go-phone/foundation/piiutil"
	"github.com/vortex-fintech/go-phone/phone/history"
)

// Field is one phone input instance: it owns an undo history and derives
// its State from the current history entry. A Field is not safe for
// concurrent use; hosts call it from their single event loop.
type Field struct {
	id      string
	engine  *Engine
	hist    *history.History[string]
	log     logger.LoggerInterface
	metrics Metrics
	ctx     context.Context

	nextObserver uint64
	observers    map[uint64]func(State)
}

type fieldOptions struct {
	id      string
	ctx     context.Context
	log     logger.LoggerInterface
	metrics Metrics
}

type FieldOption func(*fieldOptions)

// WithID overrides the generated instance id.
func WithID(id string) FieldOption {
	return func(o *fieldOptions) { o.id = id }
}

// WithContext sets the parent of the logging context, e.g. one carrying a
// session id.
func WithContext(ctx context.Context) FieldOption {
	return func(o *fieldOptions) { o.ctx = ctx }
}

func WithFieldLogger(l logger.LoggerInterface) FieldOption {
	return func(o *fieldOptions) { o.log = l }
}

func WithMetrics(m Metrics) FieldOption {
	return func(o *fieldOptions) { o.metrics = m }
}

// NewField starts a field whose first history entry is initial run through
// the engine as an insertion.
func NewField(engine *Engine, initial string, opts ...FieldOption) *Field {
	var o fieldOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.log == nil {
		o.log = engine.log
	}
	if o.metrics == nil {
		o.metrics = nopMetrics{}
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}

	start := engine.Next("", initial, Insertion)

	return &Field{
		id:        o.id,
		engine:    engine,
		hist:      history.New(start, history.WithCapacity(engine.cfg.HistoryCapacity)),
		log:       o.log,
		metrics:   o.metrics,
		ctx:       logger.ContextWithFieldID(o.ctx, o.id),
		observers: make(map[uint64]func(State)),
	}
}

func (f *Field) ID() string { return f.id }

// State derives the observable tuple from the current history entry.
func (f *Field) State() State {
	return f.engine.Derive(f.hist.Current())
}

func (f *Field) Value() string { return f.hist.Current() }

func (f *Field) CanUndo() bool { return f.hist.CanUndo() }
func (f *Field) CanRedo() bool { return f.hist.CanRedo() }

// Handle applies one host edit. Rejected or no-op edits leave the history
// untouched and notify nobody.
func (f *Field) Handle(e Edit) State {
	prev := f.hist.Current()
	next, out := f.engine.next(prev, e.Text, e.Intent)

	result := ResultUnchanged
	switch {
	case out == outcomeRejected:
		result = ResultRejected
	case next != prev && f.hist.Push(next):
		result = ResultAccepted
	}
	f.metrics.IncEdit(result)

	f.log.DebugwCtx(f.ctx, "phone edit",
		"intent", e.Intent.String(),
		"result", result,
		"value", piiutil.RedactPhone(next),
	)

	st := f.State()
	if result == ResultAccepted {
		f.notify(st)
	}
	return st
}

// Undo restores the previous canonical value verbatim.
func (f *Field) Undo() State {
	return f.move(OpUndo, f.hist.Undo)
}

// Redo re-applies the next canonical value verbatim.
func (f *Field) Redo() State {
	return f.move(OpRedo, f.hist.Redo)
}

func (f *Field) move(op string, step func() string) State {
	before := f.hist.Cursor()
	step()
	moved := f.hist.Cursor() != before
	f.metrics.IncHistory(op, moved)

	st := f.State()
	if moved {
		f.log.DebugwCtx(f.ctx, "phone history", "op", op, "cursor", f.hist.Cursor())
		f.notify(st)
	}
	return st
}

// Press handles the undo/redo shortcuts. It reports whether the key was
// consumed; other keys are left to the host.
func (f *Field) Press(k KeyPress) bool {
	switch k.action() {
	case keyUndo:
		f.Undo()
		return true
	case keyRedo:
		f.Redo()
		return true
	default:
		return false
	}
}

// Reset discards history and starts over from initial.
func (f *Field) Reset(initial string) State {
	f.hist.Reset(f.engine.Next("", initial, Insertion))
	st := f.State()
	f.notify(st)
	return st
}

// Observe registers fn to be called with the new State after every
// accepted edit, undo, redo or reset. The returned cancel is idempotent.
func (f *Field) Observe(fn func(State)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := f.nextObserver
	f.nextObserver++
	f.observers[id] = fn
	return sync.OnceFunc(func() { delete(f.observers, id) })
}

func (f *Field) notify(st State) {
	for id := uint64(0); id < f.nextObserver; id++ {
		if fn, ok := f.observers[id]; ok {
			fn(st)
		}
	}
}

// Bind attaches the field to src while the field is active. Edits go to
// Handle and key presses to Press. Call the returned unbind on every exit
// path, typically with defer; calling it more than once is safe.
func (f *Field) Bind(src Source) (unbind func()) {
	stop := src.Subscribe(func(ev Event) {
		switch {
		case ev.Edit != nil:
			f.Handle(*ev.Edit)
		case ev.Key != nil:
			f.Press(*ev.Key)
		}
	})
	if stop == nil {
		return func() {}
	}

	f.log.DebugwCtx(f.ctx, "phone field bound")
	return sync.OnceFunc(func() {
		stop()
		f.log.DebugwCtx(f.ctx, "phone field unbound")
	})
}
