package stepsize

import "fmt"

// Type represents a type of stepsize scheduler
type Type string

const (
	ConstantType    Type = "Constant"
	InverseTimeType Type = "InverseTime"
	PowerType       Type = "Power"
	CountType       Type = "Count"
)

// Config represents a configuration of a stepsize scheduler. Configs are
// JSON serializable. Eta is only used by Power schedulers.
type Config struct {
	Type
	C   float64
	Eta float64 `json:",omitempty"`
}

// Validate ensures that the Config describes a known scheduler type. The
// scheduler parameters themselves are not checked.
func (c Config) Validate() error {
	switch c.Type {
	case ConstantType, InverseTimeType, PowerType, CountType:
		return nil
	}
	return fmt.Errorf("validate: no such stepsize scheduler %q", c.Type)
}

// Create returns a new scheduler as described by c
func Create[S comparable](c Config) (Scheduler[S], error) {
	switch c.Type {
	case ConstantType:
		return NewConstant[S](c.C), nil

	case InverseTimeType:
		return NewInverseTime[S](c.C), nil

	case PowerType:
		return NewPower[S](c.C, c.Eta), nil

	case CountType:
		return NewCount[S](c.C), nil
	}

	return nil, fmt.Errorf("create: no such stepsize scheduler %q", c.Type)
}
