// Command mapsink builds the default MapSink as a loadable Go plugin
// artifact, exporting ReadMapperOp/DestroyMapperOp (spec.md §4.1, §6). The
// sink always roots its output at ./temp_mapper, matching the original
// executor's directory name for this stage.
package main

import (
	"github.com/sakkammadam/phasemr/plugins/sink/mapsink"
	"github.com/sakkammadam/phasemr/stage"
)

const mapperRoot = "temp_mapper"

// ReadMapperOp is the factory symbol pluginloader resolves.
func ReadMapperOp() stage.MapSink {
	return mapsink.New(mapperRoot)
}

// DestroyMapperOp is the destructor symbol pluginloader resolves.
func DestroyMapperOp(stage.MapSink) {}
