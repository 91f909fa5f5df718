package ral

// VertexComponents is the component layout of a vertex attribute.
type VertexComponents uint8

const (
	VertexComponentsX32Y32Z32W32 VertexComponents = iota
	VertexComponentsX32Y32Z32
	VertexComponentsX32Y32
	VertexComponentsX32
	VertexComponentsX16Y16Z16W16
	VertexComponentsX16Y16
	VertexComponentsX16
	VertexComponentsX8Y8Z8W8
	VertexComponentsX8Y8
	VertexComponentsX8
	VertexComponentsX10Y10Z10W2
	VertexComponentsX11Y11Z10

	VertexComponentsCount = int(VertexComponentsX11Y11Z10) + 1
)

// VertexDataType is the numeric representation of a vertex attribute.
type VertexDataType uint8

const (
	VertexDataTypeSFloat VertexDataType = iota
	VertexDataTypeUFloat
	VertexDataTypeSInt
	VertexDataTypeUInt
	VertexDataTypeSNorm
	VertexDataTypeUNorm

	VertexDataTypeCount = int(VertexDataTypeUNorm) + 1
)

// VertexFormat is the closed catalog of vertex attribute formats.
type VertexFormat uint8

const (
	VertexFormatUndefined VertexFormat = iota

	VertexFormatX32Y32Z32W32SFloat
	VertexFormatX32Y32Z32W32SInt
	VertexFormatX32Y32Z32W32UInt
	VertexFormatX32Y32Z32SFloat
	VertexFormatX32Y32Z32SInt
	VertexFormatX32Y32Z32UInt
	VertexFormatX32Y32SFloat
	VertexFormatX32Y32SInt
	VertexFormatX32Y32UInt
	VertexFormatX32SFloat
	VertexFormatX32SInt
	VertexFormatX32UInt
	VertexFormatX16Y16Z16W16SFloat
	VertexFormatX16Y16Z16W16SInt
	VertexFormatX16Y16Z16W16UInt
	VertexFormatX16Y16Z16W16SNorm
	VertexFormatX16Y16Z16W16UNorm
	VertexFormatX16Y16SFloat
	VertexFormatX16Y16SInt
	VertexFormatX16Y16UInt
	VertexFormatX16Y16SNorm
	VertexFormatX16Y16UNorm
	VertexFormatX16SFloat
	VertexFormatX16SInt
	VertexFormatX16UInt
	VertexFormatX16SNorm
	VertexFormatX16UNorm
	VertexFormatX8Y8Z8W8SInt
	VertexFormatX8Y8Z8W8UInt
	VertexFormatX8Y8Z8W8SNorm
	VertexFormatX8Y8Z8W8UNorm
	VertexFormatX8Y8SInt
	VertexFormatX8Y8UInt
	VertexFormatX8Y8SNorm
	VertexFormatX8Y8UNorm
	VertexFormatX8SInt
	VertexFormatX8UInt
	VertexFormatX8SNorm
	VertexFormatX8UNorm
	VertexFormatX10Y10Z10W2UInt
	VertexFormatX10Y10Z10W2UNorm
	VertexFormatX11Y11Z10UFloat

	VertexFormatCount = int(VertexFormatX11Y11Z10UFloat) + 1
)

type vertexFormatDesc struct {
	name       string
	components VertexComponents
	dataType   VertexDataType
	byteSize   uint8
}

var vertexFormatDescs = [VertexFormatCount]vertexFormatDesc{
	VertexFormatUndefined: {"Undefined", 0, 0, 0},

	VertexFormatX32Y32Z32W32SFloat: {"X32Y32Z32W32SFloat", VertexComponentsX32Y32Z32W32, VertexDataTypeSFloat, 16},
	VertexFormatX32Y32Z32W32SInt:   {"X32Y32Z32W32SInt", VertexComponentsX32Y32Z32W32, VertexDataTypeSInt, 16},
	VertexFormatX32Y32Z32W32UInt:   {"X32Y32Z32W32UInt", VertexComponentsX32Y32Z32W32, VertexDataTypeUInt, 16},
	VertexFormatX32Y32Z32SFloat:    {"X32Y32Z32SFloat", VertexComponentsX32Y32Z32, VertexDataTypeSFloat, 12},
	VertexFormatX32Y32Z32SInt:      {"X32Y32Z32SInt", VertexComponentsX32Y32Z32, VertexDataTypeSInt, 12},
	VertexFormatX32Y32Z32UInt:      {"X32Y32Z32UInt", VertexComponentsX32Y32Z32, VertexDataTypeUInt, 12},
	VertexFormatX32Y32SFloat:       {"X32Y32SFloat", VertexComponentsX32Y32, VertexDataTypeSFloat, 8},
	VertexFormatX32Y32SInt:         {"X32Y32SInt", VertexComponentsX32Y32, VertexDataTypeSInt, 8},
	VertexFormatX32Y32UInt:         {"X32Y32UInt", VertexComponentsX32Y32, VertexDataTypeUInt, 8},
	VertexFormatX32SFloat:          {"X32SFloat", VertexComponentsX32, VertexDataTypeSFloat, 4},
	VertexFormatX32SInt:            {"X32SInt", VertexComponentsX32, VertexDataTypeSInt, 4},
	VertexFormatX32UInt:            {"X32UInt", VertexComponentsX32, VertexDataTypeUInt, 4},

	VertexFormatX16Y16Z16W16SFloat: {"X16Y16Z16W16SFloat", VertexComponentsX16Y16Z16W16, VertexDataTypeSFloat, 8},
	VertexFormatX16Y16Z16W16SInt:   {"X16Y16Z16W16SInt", VertexComponentsX16Y16Z16W16, VertexDataTypeSInt, 8},
	VertexFormatX16Y16Z16W16UInt:   {"X16Y16Z16W16UInt", VertexComponentsX16Y16Z16W16, VertexDataTypeUInt, 8},
	VertexFormatX16Y16Z16W16SNorm:  {"X16Y16Z16W16SNorm", VertexComponentsX16Y16Z16W16, VertexDataTypeSNorm, 8},
	VertexFormatX16Y16Z16W16UNorm:  {"X16Y16Z16W16UNorm", VertexComponentsX16Y16Z16W16, VertexDataTypeUNorm, 8},
	VertexFormatX16Y16SFloat:       {"X16Y16SFloat", VertexComponentsX16Y16, VertexDataTypeSFloat, 4},
	VertexFormatX16Y16SInt:         {"X16Y16SInt", VertexComponentsX16Y16, VertexDataTypeSInt, 4},
	VertexFormatX16Y16UInt:         {"X16Y16UInt", VertexComponentsX16Y16, VertexDataTypeUInt, 4},
	VertexFormatX16Y16SNorm:        {"X16Y16SNorm", VertexComponentsX16Y16, VertexDataTypeSNorm, 4},
	VertexFormatX16Y16UNorm:        {"X16Y16UNorm", VertexComponentsX16Y16, VertexDataTypeUNorm, 4},
	VertexFormatX16SFloat:          {"X16SFloat", VertexComponentsX16, VertexDataTypeSFloat, 2},
	VertexFormatX16SInt:            {"X16SInt", VertexComponentsX16, VertexDataTypeSInt, 2},
	VertexFormatX16UInt:            {"X16UInt", VertexComponentsX16, VertexDataTypeUInt, 2},
	VertexFormatX16SNorm:           {"X16SNorm", VertexComponentsX16, VertexDataTypeSNorm, 2},
	VertexFormatX16UNorm:           {"X16UNorm", VertexComponentsX16, VertexDataTypeUNorm, 2},

	VertexFormatX8Y8Z8W8SInt:  {"X8Y8Z8W8SInt", VertexComponentsX8Y8Z8W8, VertexDataTypeSInt, 4},
	VertexFormatX8Y8Z8W8UInt:  {"X8Y8Z8W8UInt", VertexComponentsX8Y8Z8W8, VertexDataTypeUInt, 4},
	VertexFormatX8Y8Z8W8SNorm: {"X8Y8Z8W8SNorm", VertexComponentsX8Y8Z8W8, VertexDataTypeSNorm, 4},
	VertexFormatX8Y8Z8W8UNorm: {"X8Y8Z8W8UNorm", VertexComponentsX8Y8Z8W8, VertexDataTypeUNorm, 4},
	VertexFormatX8Y8SInt:      {"X8Y8SInt", VertexComponentsX8Y8, VertexDataTypeSInt, 2},
	VertexFormatX8Y8UInt:      {"X8Y8UInt", VertexComponentsX8Y8, VertexDataTypeUInt, 2},
	VertexFormatX8Y8SNorm:     {"X8Y8SNorm", VertexComponentsX8Y8, VertexDataTypeSNorm, 2},
	VertexFormatX8Y8UNorm:     {"X8Y8UNorm", VertexComponentsX8Y8, VertexDataTypeUNorm, 2},
	VertexFormatX8SInt:        {"X8SInt", VertexComponentsX8, VertexDataTypeSInt, 1},
	VertexFormatX8UInt:        {"X8UInt", VertexComponentsX8, VertexDataTypeUInt, 1},
	VertexFormatX8SNorm:       {"X8SNorm", VertexComponentsX8, VertexDataTypeSNorm, 1},
	VertexFormatX8UNorm:       {"X8UNorm", VertexComponentsX8, VertexDataTypeUNorm, 1},

	VertexFormatX10Y10Z10W2UInt:  {"X10Y10Z10W2UInt", VertexComponentsX10Y10Z10W2, VertexDataTypeUInt, 4},
	VertexFormatX10Y10Z10W2UNorm: {"X10Y10Z10W2UNorm", VertexComponentsX10Y10Z10W2, VertexDataTypeUNorm, 4},
	VertexFormatX11Y11Z10UFloat:  {"X11Y11Z10UFloat", VertexComponentsX11Y11Z10, VertexDataTypeUFloat, 4},
}

var vertexFormatFromPair [VertexComponentsCount][VertexDataTypeCount]VertexFormat

func init() {
	for f := VertexFormat(1); int(f) < VertexFormatCount; f++ {
		d := &vertexFormatDescs[f]
		if vertexFormatFromPair[d.components][d.dataType] != VertexFormatUndefined {
			panic("ral: duplicate components/data-type pair in vertex format catalog")
		}
		vertexFormatFromPair[d.components][d.dataType] = f
	}
}

// VertexFormatFromComponentsAndDataType returns the vertex format with the
// given layout and data type, reporting false when no defined format has
// that pair.
func VertexFormatFromComponentsAndDataType(components VertexComponents, dataType VertexDataType) (VertexFormat, bool) {
	if int(components) >= VertexComponentsCount || int(dataType) >= VertexDataTypeCount {
		return VertexFormatUndefined, false
	}
	f := vertexFormatFromPair[components][dataType]
	return f, f != VertexFormatUndefined
}

// AllVertexFormats returns every defined vertex format, in catalog order.
func AllVertexFormats() []VertexFormat {
	all := make([]VertexFormat, 0, VertexFormatCount-1)
	for f := VertexFormat(1); int(f) < VertexFormatCount; f++ {
		all = append(all, f)
	}
	return all
}

func (f VertexFormat) String() string {
	if int(f) >= VertexFormatCount {
		return "VertexFormat(invalid)"
	}
	return vertexFormatDescs[f].name
}

// Components returns the vertex format's component layout.
func (f VertexFormat) Components() VertexComponents {
	return vertexFormatDescs[f].components
}

// DataType returns the vertex format's numeric representation.
func (f VertexFormat) DataType() VertexDataType {
	return vertexFormatDescs[f].dataType
}

// ByteSize returns the size of one attribute in bytes.
func (f VertexFormat) ByteSize() int {
	return int(vertexFormatDescs[f].byteSize)
}
