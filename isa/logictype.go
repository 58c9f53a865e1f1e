package isa

// LogicType is a named, enumerated device property addressable by chip
// I/O. Parsing a LogicType token produces an Immediate operand carrying
// its numeric code (§6): the instruction stream never carries the name
// itself past parse time.
type LogicType int

// Codes fixed by spec.md §6; the remainder are this module's own
// assignment (spec.md does not fix their numeric value) and are placed on
// contiguous codes above the fixed ones so they never collide.
const (
	LogicTypeSetting    LogicType = 12
	LogicTypeHorizontal LogicType = 20
	LogicTypeVertical   LogicType = 21
	LogicTypeMode       LogicType = 30

	LogicTypePressureInput    LogicType = 31
	LogicTypePressureOutput   LogicType = 32
	LogicTypeTemperatureInput LogicType = 33
	LogicTypeTemperatureOutput LogicType = 34
	LogicTypeRatioOutput      LogicType = 35
	LogicTypeFlowRate         LogicType = 36
	LogicTypeOn               LogicType = 37
	LogicTypeError            LogicType = 38
)

var logicTypeNames = map[string]LogicType{
	"Setting":           LogicTypeSetting,
	"Horizontal":        LogicTypeHorizontal,
	"Vertical":          LogicTypeVertical,
	"Mode":              LogicTypeMode,
	"PressureInput":     LogicTypePressureInput,
	"PressureOutput":    LogicTypePressureOutput,
	"TemperatureInput":  LogicTypeTemperatureInput,
	"TemperatureOutput": LogicTypeTemperatureOutput,
	"RatioOutput":       LogicTypeRatioOutput,
	"FlowRate":          LogicTypeFlowRate,
	"On":                LogicTypeOn,
	"Error":             LogicTypeError,
}

// LookupLogicType returns the numeric code for a named LogicType token, as
// used during operand parsing.
func LookupLogicType(name string) (LogicType, bool) {
	lt, ok := logicTypeNames[name]
	return lt, ok
}

// BatchMode selects how lb/lbn/lbs/lbns aggregate a property across every
// device matching a prefab hash.
type BatchMode int

const (
	BatchModeAverage BatchMode = 0
	BatchModeSum     BatchMode = 1
	BatchModeMinimum BatchMode = 2
	BatchModeMaximum BatchMode = 3
)

var batchModeNames = map[string]BatchMode{
	"Average": BatchModeAverage,
	"Sum":     BatchModeSum,
	"Minimum": BatchModeMinimum,
	"Maximum": BatchModeMaximum,
}

// LookupBatchMode returns the numeric code for a named BatchMode token.
func LookupBatchMode(name string) (BatchMode, bool) {
	bm, ok := batchModeNames[name]
	return bm, ok
}
