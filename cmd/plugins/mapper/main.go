// Command mapper builds the default Mapper as a loadable Go plugin
// artifact, exporting CreateMapper/DestroyMapper (spec.md §4.1, §6).
package main

import (
	"github.com/sakkammadam/phasemr/plugins/mapper"
	"github.com/sakkammadam/phasemr/stage"
)

// CreateMapper is the factory symbol pluginloader resolves.
func CreateMapper() stage.Mapper {
	return mapper.New()
}

// DestroyMapper is the destructor symbol pluginloader resolves.
func DestroyMapper(stage.Mapper) {}
