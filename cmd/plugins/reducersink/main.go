// Command reducersink builds the default ReducerSink as a loadable Go
// plugin artifact, exporting ReadReducerOp/DestroyReducerOp (spec.md §4.1,
// §6). The sink always roots its output at ./final_output, the last stop
// in the directory layout spec.md §6 defines.
package main

import (
	"github.com/sakkammadam/phasemr/plugins/sink/reducersink"
	"github.com/sakkammadam/phasemr/stage"
)

const finalRoot = "final_output"

// ReadReducerOp is the factory symbol pluginloader resolves.
func ReadReducerOp() stage.ReducerSink {
	return reducersink.New(finalRoot)
}

// DestroyReducerOp is the destructor symbol pluginloader resolves.
func DestroyReducerOp(stage.ReducerSink) {}
