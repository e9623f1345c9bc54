package display

import "strings"

// Primary data type labels used in column summaries.
const (
	TypeVarchar   = "varchar"
	TypeTimestamp = "timestamp"
	TypeDate      = "date"
	TypeNumeric   = "numeric"
	TypeBoolean   = "boolean"
)

var primaryDataTypes = map[string]string{
	"STRING":     TypeVarchar,
	"CHAR":       TypeVarchar,
	"TEXT":       TypeVarchar,
	"VARCHAR":    TypeVarchar,
	"MEDIUMTEXT": TypeVarchar,
	"MEDIUMBLOB": TypeVarchar,
	"BLOB":       TypeVarchar,
	"TIMESTAMP":  TypeTimestamp,
	"TIME":       TypeTimestamp,
	"DATE":       TypeDate,
	"INT":        TypeNumeric,
	"FLOAT":      TypeNumeric,
	"SMALLINT":   TypeNumeric,
	"BIGINT":     TypeNumeric,
	"NUMERIC":    TypeNumeric,
	"TINYINT":    TypeNumeric,
	"DECIMAL":    TypeNumeric,
	"BOOLEAN":    TypeBoolean,
	"ENUM":       TypeBoolean,
}

// DataTypeString maps a column data type onto its primary label. The
// lookup is case-insensitive; unknown types are returned unchanged.
func DataTypeString(dataType string) string {
	if label, ok := primaryDataTypes[strings.ToUpper(strings.TrimSpace(dataType))]; ok {
		return label
	}
	return dataType
}
