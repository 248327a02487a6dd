package value

import "fmt"

// ScalerMode selects how the standardizer is fitted.
type ScalerMode string

const (
	// ScalerModeJoint refits on the training columns plus the new row for
	// every prediction.
	ScalerModeJoint ScalerMode = "joint"
	// ScalerModeFixed fits once on the training columns at startup.
	ScalerModeFixed ScalerMode = "fixed"
)

func (m *ScalerMode) UnmarshalText(text []byte) error {
	switch mode := ScalerMode(text); mode {
	case ScalerModeJoint, ScalerModeFixed:
		*m = mode

		return nil
	default:
		return fmt.Errorf("unknown scaler mode %q", text)
	}
}

func (m ScalerMode) String() string {
	return string(m)
}
