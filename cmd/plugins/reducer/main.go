// Command reducer builds the default Reducer as a loadable Go plugin
// artifact, exporting CreateReducer/DestroyReducer (spec.md §4.1, §6).
package main

import (
	"github.com/sakkammadam/phasemr/plugins/reducer"
	"github.com/sakkammadam/phasemr/stage"
)

// CreateReducer is the factory symbol pluginloader resolves.
func CreateReducer() stage.Reducer {
	return reducer.New()
}

// DestroyReducer is the destructor symbol pluginloader resolves.
func DestroyReducer(stage.Reducer) {}
