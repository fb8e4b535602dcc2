package booking

type Type string

const (
	TypeConsultancy Type = "consultancy"
	TypeAssistance  Type = "assistance"
	TypeCommercial  Type = "commercial"
)

func Types() []string {
	return []string{string(TypeConsultancy), string(TypeAssistance), string(TypeCommercial)}
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeConsultancy, TypeAssistance, TypeCommercial:
		return true
	default:
		return false
	}
}
