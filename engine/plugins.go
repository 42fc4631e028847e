package engine

import "github.com/sakkammadam/phasemr/pluginloader"

// Plugins holds the factory/destructor pair for every stage role, resolved
// from the seven plugin artifacts spec.md §6 names. bootstrap.Load builds
// one of these from a libs/ directory tree; tests build one directly from
// stub implementations.
type Plugins struct {
	NewInput     pluginloader.CreateInputFunc
	DestroyInput pluginloader.DestroyInputFunc

	NewMapper     pluginloader.CreateMapperFunc
	DestroyMapper pluginloader.DestroyMapperFunc

	NewMapSink     pluginloader.ReadMapperOpFunc
	DestroyMapSink pluginloader.DestroyMapperOpFunc

	NewShuffler     pluginloader.CreateShufflerFunc
	DestroyShuffler pluginloader.DestroyShufflerFunc

	NewShuffleSink     pluginloader.ReadShufflerOpFunc
	DestroyShuffleSink pluginloader.DestroyShufflerOpFunc

	NewReducer     pluginloader.CreateReducerFunc
	DestroyReducer pluginloader.DestroyReducerFunc

	NewReducerSink     pluginloader.ReadReducerOpFunc
	DestroyReducerSink pluginloader.DestroyReducerOpFunc
}
