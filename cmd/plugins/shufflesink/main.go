// Command shufflesink builds the default ShuffleSink as a loadable Go
// plugin artifact, exporting ReadShufflerOp/DestroyShufflerOp (spec.md
// §4.1, §6). The sink always roots its output at ./temp_shuffler,
// matching the original executor's directory name for this stage.
package main

import (
	"github.com/sakkammadam/phasemr/plugins/sink/shufflesink"
	"github.com/sakkammadam/phasemr/stage"
)

const shufflerRoot = "temp_shuffler"

// ReadShufflerOp is the factory symbol pluginloader resolves.
func ReadShufflerOp() stage.ShuffleSink {
	return shufflesink.New(shufflerRoot)
}

// DestroyShufflerOp is the destructor symbol pluginloader resolves.
func DestroyShufflerOp(stage.ShuffleSink) {}
