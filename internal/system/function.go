package system

import (
	"errors"
	"fmt"
)

// Function is a behaviour that can be bound to a display slot.
type Function uint8

const (
	None Function = iota
	ColorTest
	CPUGraph
	MiscGraph
	Snake
	Settings

	functionCount
)

var functionNames = [functionCount]string{
	None:      "None",
	ColorTest: "Color Test",
	CPUGraph:  "CPU Graph",
	MiscGraph: "Misc Graph",
	Snake:     "Snake",
	Settings:  "Settings",
}

var functionKeys = [functionCount]string{
	None:      "none",
	ColorTest: "color_test",
	CPUGraph:  "cpu_graph",
	MiscGraph: "misc_graph",
	Snake:     "snake",
	Settings:  "settings",
}

// String returns the label shown in the settings menu.
func (f Function) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Function(%d)", uint8(f))
	}
	return functionNames[f]
}

// Key returns the configuration name of f.
func (f Function) Key() string {
	if !f.Valid() {
		return ""
	}
	return functionKeys[f]
}

func (f Function) Valid() bool { return f < functionCount }

var (
	ErrInvalidSlot     = errors.New("system: invalid display slot")
	ErrUnknownFunction = errors.New("system: unknown display function")
)

// ParseFunction maps a configuration name to a Function.
func ParseFunction(key string) (Function, error) {
	for f, k := range functionKeys {
		if k == key {
			return Function(f), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownFunction, key)
}

// AllFunctions lists every Function in menu order.
func AllFunctions() []Function {
	out := make([]Function, functionCount)
	for i := range out {
		out[i] = Function(i)
	}
	return out
}
