// Package pluginloader opens plugin artifacts (Go plugin .so files, the
// same-process dlopen equivalent) and resolves typed factory symbols from
// them. It supports exactly the factory type set spec.md §4.1 names;
// resolving any other function type is a compile-time refusal (see Resolve).
package pluginloader

import (
	"plugin"

	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
)

// Handle is an opened plugin artifact.
type Handle struct {
	path string
	p    *plugin.Plugin
}

// Open loads the plugin artifact at path immediately, which also runs the
// plugin's package initializers; loading is not deferred until a symbol is
// resolved from the returned Handle.
func Open(path string) (*Handle, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, mrerrors.PluginOpenError{Path: path, Message: err.Error()}
	}
	return &Handle{path: path, p: p}, nil
}

// Path returns the artifact path the Handle was opened from.
func (h *Handle) Path() string { return h.path }

// Factory-type aliases. Each is a type alias (not a defined type) so that
// Resolve's type-parameter assertion below matches the unnamed function
// type every Go plugin symbol actually has.
type (
	CreateInputFunc  = func() stage.InputReader
	DestroyInputFunc = func(stage.InputReader)

	CreateMapperFunc  = func() stage.Mapper
	DestroyMapperFunc = func(stage.Mapper)

	ReadMapperOpFunc    = func() stage.MapSink
	DestroyMapperOpFunc = func(stage.MapSink)

	CreateShufflerFunc  = func() stage.Shuffler
	DestroyShufflerFunc = func(stage.Shuffler)

	ReadShufflerOpFunc    = func() stage.ShuffleSink
	DestroyShufflerOpFunc = func(stage.ShuffleSink)

	CreateReducerFunc  = func() stage.Reducer
	DestroyReducerFunc = func(stage.Reducer)

	ReadReducerOpFunc    = func() stage.ReducerSink
	DestroyReducerOpFunc = func(stage.ReducerSink)
)

// Factory is the closed set of factory/destructor function types the
// loader supports. Instantiating Resolve with any other type fails to
// compile, which is the "compile-time refusal" spec.md §4.1 asks for.
type Factory interface {
	CreateInputFunc | DestroyInputFunc |
		CreateMapperFunc | DestroyMapperFunc |
		ReadMapperOpFunc | DestroyMapperOpFunc |
		CreateShufflerFunc | DestroyShufflerFunc |
		ReadShufflerOpFunc | DestroyShufflerOpFunc |
		CreateReducerFunc | DestroyReducerFunc |
		ReadReducerOpFunc | DestroyReducerOpFunc
}

// Resolve looks up symbol in h and returns it typed as T. T must be one of
// the Factory type set members.
func Resolve[T Factory](h *Handle, symbol string) (T, error) {
	var zero T

	sym, err := h.p.Lookup(symbol)
	if err != nil {
		return zero, mrerrors.SymbolMissing{Path: h.path, Symbol: symbol, Message: err.Error()}
	}

	fn, ok := sym.(T)
	if !ok {
		return zero, mrerrors.SymbolMissing{
			Path:    h.path,
			Symbol:  symbol,
			Message: "symbol exists but has an unexpected type",
		}
	}
	return fn, nil
}

// Symbol names, translated from spec.md §6's snake_case dlsym-style table
// into valid exported Go identifiers (see DESIGN.md Open Questions). The
// factory/destructor pairing per artifact path is otherwise unchanged.
const (
	SymbolCreateInput  = "CreateInput"
	SymbolDestroyInput = "DestroyInput"

	SymbolCreateMapper  = "CreateMapper"
	SymbolDestroyMapper = "DestroyMapper"

	SymbolReadMapperOp    = "ReadMapperOp"
	SymbolDestroyMapperOp = "DestroyMapperOp"

	SymbolCreateShuffler  = "CreateShuffler"
	SymbolDestroyShuffler = "DestroyShuffler"

	SymbolReadShufflerOp    = "ReadShufflerOp"
	SymbolDestroyShufflerOp = "DestroyShufflerOp"

	SymbolCreateReducer  = "CreateReducer"
	SymbolDestroyReducer = "DestroyReducer"

	SymbolReadReducerOp    = "ReadReducerOp"
	SymbolDestroyReducerOp = "DestroyReducerOp"
)

// ArtifactPaths holds the fixed relative paths spec.md §6 defines for the
// seven plugin artifacts.
type ArtifactPaths struct {
	Input       string // libs/fp/<InputSink>
	Mapper      string // libs/map/<MapperImpl>
	MapSink     string // libs/fp/<MapSink>
	Shuffler    string // libs/shuffle/<ShufflerImpl>
	ShuffleSink string // libs/fp/<ShuffleSink>
	Reducer     string // libs/reduce/<ReducerImpl>
	ReducerSink string // libs/fp/<ReduceSink>
}

// DefaultArtifactPaths returns the conventional paths under root.
func DefaultArtifactPaths(root string) ArtifactPaths {
	join := func(parts ...string) string {
		out := root
		for _, p := range parts {
			out += "/" + p
		}
		return out
	}
	return ArtifactPaths{
		Input:       join("libs", "fp", "input.so"),
		Mapper:      join("libs", "map", "mapper.so"),
		MapSink:     join("libs", "fp", "mapsink.so"),
		Shuffler:    join("libs", "shuffle", "shuffler.so"),
		ShuffleSink: join("libs", "fp", "shufflesink.so"),
		Reducer:     join("libs", "reduce", "reducer.so"),
		ReducerSink: join("libs", "fp", "reducersink.so"),
	}
}
