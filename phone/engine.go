package phone

import (
	"strings"

	"github.com/vortex-fintech/go-phone/foundation/errx"
	"github.com/vortex-fintech/go-phone/foundation/geo"
	"github.com/vortex-fintech/go-phone/foundation/logger"
	"github.com/vortex-fintech/go-phone/foundation/textutil"
)

// Engine turns a raw edit into the next canonical value. It holds no
// per-field state and is safe to share between fields.
type Engine struct {
	cfg   Config
	mask  rune
	table *geo.Table
	log   logger.LoggerInterface
}

type EngineOption func(*Engine)

func WithLogger(l logger.LoggerInterface) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine validates cfg against table and fails fast on any
// configuration problem. A nil table selects geo.Default().
func NewEngine(cfg Config, table *geo.Table, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = geo.Default()
	}

	e := &Engine{cfg: cfg, mask: cfg.maskRune(), table: table, log: logger.Nop()}
	for _, o := range opts {
		o(e)
	}

	for _, c := range table.Countries() {
		if c.HasFormat() && textutil.SlotCount(c.Format, e.mask) == 0 {
			return nil, errx.Config("countries."+c.ISO2+".format", "no_mask_slots")
		}
	}
	return e, nil
}

func (e *Engine) Config() Config    { return e.cfg }
func (e *Engine) Table() *geo.Table { return e.table }

type outcome uint8

const (
	outcomeApplied outcome = iota
	outcomeRejected
)

// Next returns the canonical value for raw. An over-long edit is rejected
// by returning previous unchanged.
func (e *Engine) Next(previous, raw string, intent Intent) string {
	v, _ := e.next(previous, raw, intent)
	return v
}

func (e *Engine) next(previous, raw string, intent Intent) (string, outcome) {
	if raw == "" {
		return "", outcomeApplied
	}

	prefix := e.cfg.Prefix
	v := textutil.StripNonDigits(raw, prefix)

	if len(v) > e.cfg.MaxLength {
		e.log.Debugw("phone edit rejected",
			"reason", "max_length",
			"length", len(v),
			"max_length", e.cfg.MaxLength,
			"intent", intent.String(),
		)
		return previous, outcomeRejected
	}

	if !strings.HasPrefix(v, prefix) {
		v = prefix + v
	}

	country, ok := e.table.Guess(textutil.DigitsOnly(v))
	if ok && country.HasFormat() {
		v = textutil.ApplyMask(v, textutil.Mask{
			Template:     country.Format,
			Symbol:       e.mask,
			Offset:       len(prefix) + len(country.DialCode),
			TrimLeftover: intent == Deletion,
		})
	}

	if ok && e.cfg.InsertSpaceAfterDialCode {
		v = textutil.InsertAt(v, len(prefix)+len(country.DialCode), ' ')
	}

	return strings.TrimSpace(v), outcomeApplied
}

// Guess matches a country against the digits of value.
func (e *Engine) Guess(value string) (geo.Country, bool) {
	return e.table.Guess(textutil.DigitsOnly(value))
}

// Derive computes the observable state for a canonical value.
func (e *Engine) Derive(value string) State {
	s := State{Value: value, Digits: textutil.DigitsOnly(value)}
	if c, ok := e.table.Guess(s.Digits); ok {
		s.Country = &c
	}
	return s
}
