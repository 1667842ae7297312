package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/numconv/errors"
	"github.com/wippyai/numconv/host"
	"github.com/wippyai/numconv/internal/guest"
)

const (
	// outPtr is where encoders write in the built-in guest.
	outPtr = 0
	// spanPtr is where text is staged for decoders and parsers.
	spanPtr = 1024
)

// session is a wazero runtime with the host module and one guest.
type session struct {
	rt     wazero.Runtime
	mod    api.Module
	log    *zap.Logger
	source string
}

type sessionConfig struct {
	wasmFile string
	wasi     bool
	checked  bool
}

// newSession loads cfg.wasmFile, or the built-in trampoline guest over every
// host export when it is empty.
func newSession(ctx context.Context, cfg sessionConfig, log *zap.Logger) (*session, error) {
	rt := wazero.NewRuntime(ctx)
	s := &session{rt: rt, log: log, source: cfg.wasmFile}

	if cfg.wasi {
		if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
			rt.Close(ctx)
			return nil, errors.Instantiation(err)
		}
	}
	if _, err := host.Instantiate(ctx, rt, host.WithLogger(log), host.WithChecked(cfg.checked)); err != nil {
		rt.Close(ctx)
		return nil, err
	}

	var bin []byte
	if cfg.wasmFile == "" {
		s.source = "built-in guest"
		bin = guest.Trampoline(trampolineImports())
	} else {
		data, err := os.ReadFile(cfg.wasmFile)
		if err != nil {
			rt.Close(ctx)
			return nil, fmt.Errorf("read file: %w", err)
		}
		bin = data
	}

	compiled, err := rt.CompileModule(ctx, bin)
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "compile guest")
	}
	if err := host.CheckImports(compiled); err != nil {
		rt.Close(ctx)
		return nil, err
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().
		WithName("guest").
		WithStdout(os.Stdout).
		WithStderr(os.Stderr))
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Instantiation(err)
	}
	s.mod = mod

	log.Debug("guest loaded",
		zap.String("source", s.source),
		zap.Int("exports", len(compiled.ExportedFunctions())))
	return s, nil
}

func trampolineImports() []guest.Import {
	funcs := host.Exports()
	out := make([]guest.Import, len(funcs))
	for i, f := range funcs {
		out[i] = guest.Import{
			Module:  host.ModuleName,
			Name:    f.Name,
			Params:  f.ParamTypes(),
			Results: f.ResultTypes(),
		}
	}
	return out
}

func (s *session) Close(ctx context.Context) error {
	return s.rt.Close(ctx)
}

// exports lists the guest's exported functions with their core signatures.
func (s *session) exports() map[string]api.FunctionDefinition {
	return s.mod.ExportedFunctionDefinitions()
}

// callRaw calls a guest export, reading each argument for the matching core
// parameter type.
func (s *session) callRaw(ctx context.Context, name string, args []string) ([]string, error) {
	fn := s.mod.ExportedFunction(name)
	if fn == nil {
		return nil, errors.NotFound(errors.PhaseHost, "function", name)
	}
	def := fn.Definition()
	params := def.ParamTypes()
	if len(args) != len(params) {
		return nil, errors.InvalidInput(errors.PhaseHost,
			fmt.Sprintf("%s takes %d arguments, got %d", name, len(params), len(args)))
	}

	stack := make([]uint64, len(params))
	for i, a := range args {
		v, err := coreArg(a, params[i])
		if err != nil {
			return nil, err
		}
		stack[i] = v
	}

	s.log.Debug("calling guest", zap.String("func", name), zap.Strings("args", args))
	res, err := fn.Call(ctx, stack...)
	if err != nil {
		return nil, err
	}

	var wt []wit.Type
	if f, ok := host.Lookup(name); ok {
		wt = f.Results
	}
	out := make([]string, len(res))
	for i, v := range res {
		if i < len(wt) {
			out[i] = formatResult(v, wt[i])
		} else {
			out[i] = formatCore(v, def.ResultTypes()[i])
		}
	}
	return out, nil
}

// invoke calls a host export through the guest with the arguments a person
// types (see describe). Text is staged in guest memory; encoder output is
// read back from it.
func (s *session) invoke(ctx context.Context, fi funcInfo, values []string) (string, error) {
	f := fi.fn
	fn := s.mod.ExportedFunction(f.Name)
	if fn == nil {
		return "", errors.NotFound(errors.PhaseHost, "function", f.Name)
	}
	if len(values) != len(fi.params) {
		return "", errors.InvalidInput(errors.PhaseHost,
			fmt.Sprintf("%s takes %d arguments, got %d", f.Name, len(fi.params), len(values)))
	}

	mem := s.mod.Memory()
	if mem == nil && (isSpan(f) || isEncode(f)) {
		return "", errors.NotFound(errors.PhaseHost, "memory", s.source)
	}

	var stack []uint64
	switch {
	case isSpan(f):
		text := values[0]
		if !mem.Write(spanPtr, []byte(text)) {
			return "", errors.OutOfBounds(errors.PhaseHost, nil, spanPtr+len(text), int(mem.Size()))
		}
		stack = []uint64{api.EncodeU32(spanPtr), api.EncodeU32(uint32(len(text)))}
	case isEncode(f):
		v, err := convertArg(values[0], fi.params[0].witType)
		if err != nil {
			return "", err
		}
		stack = []uint64{v, api.EncodeU32(outPtr)}
	default:
		for i, p := range fi.params {
			v, err := convertArg(values[i], p.witType)
			if err != nil {
				return "", err
			}
			stack = append(stack, v)
		}
	}

	s.log.Debug("invoking host export", zap.String("func", f.Name), zap.Strings("args", values))
	res, err := fn.Call(ctx, stack...)
	if err != nil {
		return "", err
	}

	if isEncode(f) {
		n := api.DecodeU32(res[0])
		text, ok := mem.Read(outPtr, n)
		if !ok {
			return "", errors.OutOfBounds(errors.PhaseHost, nil, outPtr+int(n), int(mem.Size()))
		}
		return string(text), nil
	}
	return formatResult(res[0], f.Results[0]), nil
}
