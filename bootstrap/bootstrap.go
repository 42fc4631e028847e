// Package bootstrap resolves the seven plugin artifacts spec.md §6 names
// into an engine.Plugins, one pluginloader.Open/Resolve pair per artifact.
package bootstrap

import (
	"github.com/sakkammadam/phasemr/engine"
	"github.com/sakkammadam/phasemr/pluginloader"
)

// Load opens every artifact under paths and resolves its factory/destructor
// symbol pair, returning a ready-to-use engine.Plugins. Each Handle is kept
// open for the lifetime of the returned Plugins — Go plugins cannot be
// unloaded once opened.
func Load(paths pluginloader.ArtifactPaths) (engine.Plugins, error) {
	input, err := pluginloader.Open(paths.Input)
	if err != nil {
		return engine.Plugins{}, err
	}
	mapper, err := pluginloader.Open(paths.Mapper)
	if err != nil {
		return engine.Plugins{}, err
	}
	mapSink, err := pluginloader.Open(paths.MapSink)
	if err != nil {
		return engine.Plugins{}, err
	}
	shuffler, err := pluginloader.Open(paths.Shuffler)
	if err != nil {
		return engine.Plugins{}, err
	}
	shuffleSink, err := pluginloader.Open(paths.ShuffleSink)
	if err != nil {
		return engine.Plugins{}, err
	}
	reducer, err := pluginloader.Open(paths.Reducer)
	if err != nil {
		return engine.Plugins{}, err
	}
	reducerSink, err := pluginloader.Open(paths.ReducerSink)
	if err != nil {
		return engine.Plugins{}, err
	}

	newInput, err := pluginloader.Resolve[pluginloader.CreateInputFunc](input, pluginloader.SymbolCreateInput)
	if err != nil {
		return engine.Plugins{}, err
	}
	destroyInput, err := pluginloader.Resolve[pluginloader.DestroyInputFunc](input, pluginloader.SymbolDestroyInput)
	if err != nil {
		return engine.Plugins{}, err
	}

	newMapper, err := pluginloader.Resolve[pluginloader.CreateMapperFunc](mapper, pluginloader.SymbolCreateMapper)
	if err != nil {
		return engine.Plugins{}, err
	}
	destroyMapper, err := pluginloader.Resolve[pluginloader.DestroyMapperFunc](mapper, pluginloader.SymbolDestroyMapper)
	if err != nil {
		return engine.Plugins{}, err
	}

	newMapSink, err := pluginloader.Resolve[pluginloader.ReadMapperOpFunc](mapSink, pluginloader.SymbolReadMapperOp)
	if err != nil {
		return engine.Plugins{}, err
	}
	destroyMapSink, err := pluginloader.Resolve[pluginloader.DestroyMapperOpFunc](mapSink, pluginloader.SymbolDestroyMapperOp)
	if err != nil {
		return engine.Plugins{}, err
	}

	newShuffler, err := pluginloader.Resolve[pluginloader.CreateShufflerFunc](shuffler, pluginloader.SymbolCreateShuffler)
	if err != nil {
		return engine.Plugins{}, err
	}
	destroyShuffler, err := pluginloader.Resolve[pluginloader.DestroyShufflerFunc](shuffler, pluginloader.SymbolDestroyShuffler)
	if err != nil {
		return engine.Plugins{}, err
	}

	newShuffleSink, err := pluginloader.Resolve[pluginloader.ReadShufflerOpFunc](shuffleSink, pluginloader.SymbolReadShufflerOp)
	if err != nil {
		return engine.Plugins{}, err
	}
	destroyShuffleSink, err := pluginloader.Resolve[pluginloader.DestroyShufflerOpFunc](shuffleSink, pluginloader.SymbolDestroyShufflerOp)
	if err != nil {
		return engine.Plugins{}, err
	}

	newReducer, err := pluginloader.Resolve[pluginloader.CreateReducerFunc](reducer, pluginloader.SymbolCreateReducer)
	if err != nil {
		return engine.Plugins{}, err
	}
	destroyReducer, err := pluginloader.Resolve[pluginloader.DestroyReducerFunc](reducer, pluginloader.SymbolDestroyReducer)
	if err != nil {
		return engine.Plugins{}, err
	}

	newReducerSink, err := pluginloader.Resolve[pluginloader.ReadReducerOpFunc](reducerSink, pluginloader.SymbolReadReducerOp)
	if err != nil {
		return engine.Plugins{}, err
	}
	destroyReducerSink, err := pluginloader.Resolve[pluginloader.DestroyReducerOpFunc](reducerSink, pluginloader.SymbolDestroyReducerOp)
	if err != nil {
		return engine.Plugins{}, err
	}

	return engine.Plugins{
		NewInput:     newInput,
		DestroyInput: destroyInput,

		NewMapper:     newMapper,
		DestroyMapper: destroyMapper,

		NewMapSink:     newMapSink,
		DestroyMapSink: destroyMapSink,

		NewShuffler:     newShuffler,
		DestroyShuffler: destroyShuffler,

		NewShuffleSink:     newShuffleSink,
		DestroyShuffleSink: destroyShuffleSink,

		NewReducer:     newReducer,
		DestroyReducer: destroyReducer,

		NewReducerSink:     newReducerSink,
		DestroyReducerSink: destroyReducerSink,
	}, nil
}
