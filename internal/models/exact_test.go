package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func TestExactStringColumnType(t *testing.T) {
	tests := []struct {
		name      string
		dialector gorm.Dialector
		size      int
		want      string
	}{
		{"mysql", mysql.New(mysql.Config{}), 255, "VARBINARY(1020)"},
		{"mysql default size", mysql.New(mysql.Config{}), 0, "VARBINARY(1020)"},
		{"sqlserver", sqlserver.New(sqlserver.Config{}), 64, "NVARCHAR(64) COLLATE Latin1_General_100_BIN2"},
		{"postgres", postgres.New(postgres.Config{}), 64, ""},
		{"sqlite", sqlite.Open(":memory:"), 64, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &gorm.DB{Config: &gorm.Config{Dialector: tt.dialector}}
			got := ExactString("").GormDBDataType(db, &schema.Field{Size: tt.size})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntriesKeepCaseVariants(t *testing.T) {
	entries := Document{"2024-01-01": {"morning": {"Alice", "alice", "ALICE"}}}.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, Document{"2024-01-01": {"morning": {"Alice", "alice", "ALICE"}}}, FoldEntries(entries))
}
