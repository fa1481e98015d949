package types

// ControlMeasureType classifies a control measure. Sequence numbers of
// control measures are scoped per (risk cause, type).
type ControlMeasureType string

const (
	ControlTypePreventif ControlMeasureType = "Prv"
	ControlTypeMitigasi  ControlMeasureType = "RM"
	ControlTypeKorektif  ControlMeasureType = "Crr"
)

// AllControlMeasureTypes returns all valid control measure types
func AllControlMeasureTypes() []ControlMeasureType {
	return []ControlMeasureType{
		ControlTypePreventif,
		ControlTypeMitigasi,
		ControlTypeKorektif,
	}
}

// IsValid checks if the control type is a member of the enumeration
func (t ControlMeasureType) IsValid() bool {
	switch t {
	case ControlTypePreventif, ControlTypeMitigasi, ControlTypeKorektif:
		return true
	default:
		return false
	}
}

// Name returns the long-form name of the control type
func (t ControlMeasureType) Name() string {
	switch t {
	case ControlTypePreventif:
		return "Preventif"
	case ControlTypeMitigasi:
		return "Mitigasi Risiko"
	case ControlTypeKorektif:
		return "Korektif"
	default:
		return string(t)
	}
}

// String returns the string representation of the control type
func (t ControlMeasureType) String() string {
	return string(t)
}
