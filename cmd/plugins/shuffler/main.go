// Command shuffler builds the default Shuffler as a loadable Go plugin
// artifact, exporting CreateShuffler/DestroyShuffler (spec.md §4.1, §6).
package main

import (
	"github.com/sakkammadam/phasemr/plugins/shuffler"
	"github.com/sakkammadam/phasemr/stage"
)

// CreateShuffler is the factory symbol pluginloader resolves.
func CreateShuffler() stage.Shuffler {
	return shuffler.New()
}

// DestroyShuffler is the destructor symbol pluginloader resolves.
func DestroyShuffler(stage.Shuffler) {}
