package models

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ExactString is a string column compared byte for byte on every dialect.
// SQLite and PostgreSQL already compare text exactly; MySQL/MariaDB and SQL
// Server default to case-insensitive collations, which would fold distinct
// member names together under a unique index.
type ExactString string

// GormDBDataType picks a binary comparing column type per dialect
func (ExactString) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	size := field.Size
	if size <= 0 {
		size = 255
	}

	switch db.Dialector.Name() {
	case "mysql":
		// VARBINARY also avoids PAD SPACE collations treating "a" and "a " as equal
		return fmt.Sprintf("VARBINARY(%d)", size*4)
	case "sqlserver":
		return fmt.Sprintf("NVARCHAR(%d) COLLATE Latin1_General_100_BIN2", size)
	}
	return ""
}
