package frame

type FieldType uint8

const (
	Utf8FieldType FieldType = iota
	Int64FieldType
	Float64FieldType
	DatetimeFieldType
	FloatListFieldType
)

func (f FieldType) String() string {
	switch f {
	case Utf8FieldType:
		return "Utf8"
	case Int64FieldType:
		return "Int64"
	case Float64FieldType:
		return "Float64"
	case DatetimeFieldType:
		return "Datetime"
	case FloatListFieldType:
		return "FloatList"
	default:
		return ""
	}
}

func (f FieldType) Numeric() bool {
	switch f {
	case Int64FieldType, Float64FieldType:
		return true
	default:
		return false
	}
}
