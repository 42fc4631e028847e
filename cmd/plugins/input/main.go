// Command input builds the default InputReader as a loadable Go plugin
// artifact, exporting CreateInput/DestroyInput (spec.md §4.1, §6).
package main

import (
	"github.com/sakkammadam/phasemr/plugins/input"
	"github.com/sakkammadam/phasemr/stage"
)

// CreateInput is the factory symbol pluginloader resolves.
func CreateInput() stage.InputReader {
	return input.New()
}

// DestroyInput is the destructor symbol pluginloader resolves. The default
// Reader holds no resources that need releasing.
func DestroyInput(stage.InputReader) {}
