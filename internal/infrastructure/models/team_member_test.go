package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestTeamMemberTableName(t *testing.T) {
	if got := (TeamMember{}).TableName(); got != "team_members" {
		t.Fatalf("unexpected TeamMember table name: %s", got)
	}
}

func TestMigrate_CreatesUniqueIndexes(t *testing.T) {
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migrate must be repeatable")

	m := db.Migrator()
	require.True(t, m.HasTable(&TeamMember{}))
	require.True(t, m.HasIndex(&TeamMember{}, "Email"))
	require.True(t, m.HasIndex(&TeamMember{}, "RegNumber"))
	require.True(t, m.HasIndex(&TeamMember{}, "Department"))
}
