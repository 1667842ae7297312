package host

import (
	"context"
	stderrors "errors"
	"slices"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/numconv/errors"
)

type config struct {
	logger  *zap.Logger
	checked bool
}

// Option configures a host module instance.
type Option func(*config)

// WithLogger sets the logger for one module instance. The package logger is
// used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithChecked selects the checked (default) or unchecked codec and parser.
// Unchecked functions never validate digits, so malformed guest input
// yields unspecified values instead of a trap.
func WithChecked(checked bool) Option {
	return func(c *config) {
		c.checked = checked
	}
}

func newConfig(opts []Option) *config {
	c := &config{checked: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = Logger()
	}
	return c
}

// memory returns the calling guest's memory, trapping when it has none.
func (c *config) memory(fn string, mod api.Module) *Wrapper {
	mem := mod.Memory()
	if mem == nil {
		c.trap(fn, errors.NotFound(errors.PhaseHost, "memory", mod.Name()))
	}
	return &Wrapper{Mem: mem}
}

// trap aborts the guest call. wazero recovers the panic and returns it from
// the guest's Call.
func (c *config) trap(fn string, cause error) {
	kind := errors.KindInvalidInput
	var e *errors.Error
	if stderrors.As(cause, &e) {
		kind = e.Kind
	}
	err := errors.Wrap(errors.PhaseHost, kind, cause, fn)
	c.logger.Debug("guest call trapped", zap.String("func", fn), zap.Error(cause))
	panic(err)
}

// NewModuleBuilder returns a builder with every export defined. Callers may
// add functions before instantiating it.
func NewModuleBuilder(r wazero.Runtime, opts ...Option) wazero.HostModuleBuilder {
	c := newConfig(opts)
	b := r.NewHostModuleBuilder(ModuleName)
	for _, f := range Exports() {
		b = b.NewFunctionBuilder().
			WithGoModuleFunction(f.bind(c), f.ParamTypes(), f.ResultTypes()).
			WithName(f.Name).
			WithParameterNames(f.ParamNames()...).
			Export(f.Name)
	}
	return b
}

// Instantiate instantiates the host module into r so guests can import it.
func Instantiate(ctx context.Context, r wazero.Runtime, opts ...Option) (api.Module, error) {
	c := newConfig(opts)
	mod, err := NewModuleBuilder(r, opts...).Instantiate(ctx)
	if err != nil {
		c.logger.Warn("host module instantiation failed", zap.Error(err))
		return nil, errors.Instantiation(err)
	}
	c.logger.Info("host module instantiated",
		zap.String("module", ModuleName),
		zap.Int("functions", len(Exports())),
		zap.Bool("checked", c.checked))
	return mod, nil
}

// CheckImports verifies that every function compiled imports from the host
// module exists with a matching core signature. Missing functions are
// reported together as an *errors.MissingImportsError.
func CheckImports(compiled wazero.CompiledModule) error {
	var missing []string
	for _, def := range compiled.ImportedFunctions() {
		module, name, ok := def.Import()
		if !ok || module != ModuleName {
			continue
		}
		f, found := Lookup(name)
		if !found {
			missing = append(missing, module+"#"+name)
			continue
		}
		if !slices.Equal(def.ParamTypes(), f.ParamTypes()) || !slices.Equal(def.ResultTypes(), f.ResultTypes()) {
			return errors.New(errors.PhaseLoad, errors.KindTypeMismatch).
				Path(name).
				Detail("guest imports %s, host exports %s", signature(def.ParamTypes(), def.ResultTypes()), signature(f.ParamTypes(), f.ResultTypes())).
				Build()
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingImportsError(missing)
	}
	return nil
}

func signature(params, results []api.ValueType) string {
	s := "("
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += api.ValueTypeName(p)
	}
	s += ")"
	for i, r := range results {
		if i == 0 {
			s += " -> "
		} else {
			s += ", "
		}
		s += api.ValueTypeName(r)
	}
	return s
}
