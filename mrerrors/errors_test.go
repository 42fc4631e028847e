package mrerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_UnwrapChains(t *testing.T) {
	cause := errors.New("boom")

	cases := []error{
		InputUnreadable{Path: "a.txt", Err: cause},
		MapperFailed{File: "a.txt", Partition: 0, Err: cause},
		ShuffleInputMissing{Path: "temp_mapper/a.txt", Err: cause},
		ReduceInputMissing{Path: "temp_shuffler/a.txt", Err: cause},
		SinkWriteFailed{Stage: "reduce", Path: "final_output/a.txt", Err: cause},
	}

	for _, err := range cases {
		t.Run(fmt.Sprintf("%T", err), func(t *testing.T) {
			assert.ErrorIs(t, err, cause)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestPluginOpenError_Message(t *testing.T) {
	err := PluginOpenError{Path: "libs/map/mapper.so", Message: "no such file"}
	assert.Contains(t, err.Error(), "libs/map/mapper.so")
	assert.Contains(t, err.Error(), "no such file")
}

func TestSymbolMissing_Message(t *testing.T) {
	err := SymbolMissing{Path: "libs/map/mapper.so", Symbol: "CreateMapper", Message: "symbol not found"}
	assert.Contains(t, err.Error(), "CreateMapper")
}

func TestDuplicateInputName_Message(t *testing.T) {
	err := DuplicateInputName{Leaf: "a.txt"}
	assert.Contains(t, err.Error(), "a.txt")
}

func TestReconciliationFailed_Message(t *testing.T) {
	err := ReconciliationFailed{MissingInOutput: []string{"a.txt"}, MissingInInput: []string{"b.txt"}}
	assert.Contains(t, err.Error(), "1 file(s) missing in output")
	assert.Contains(t, err.Error(), "1 file(s) missing in input")
}

func TestInputValidationError_Message(t *testing.T) {
	err := InputValidationError{Path: "/no/such/dir", Message: "does not exist"}
	assert.Contains(t, err.Error(), "/no/such/dir")
	assert.Contains(t, err.Error(), "does not exist")
}
