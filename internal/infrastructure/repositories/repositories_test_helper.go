package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"msc-team.backend/internal/infrastructure/datasources/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := sqlite.Open(dsn)
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTeamMemberTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		reg_number TEXT NOT NULL,
		email TEXT NOT NULL,
		contact_number TEXT NOT NULL,
		department TEXT NOT NULL,
		role TEXT NOT NULL,
		github_link TEXT,
		linkedin_link TEXT,
		resume_link TEXT,
		portfolio_link TEXT,
		skills TEXT,
		short_bio TEXT,
		image_path TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE UNIQUE INDEX idx_team_members_email ON team_members(email);`)
	mustExec(t, db, `CREATE UNIQUE INDEX idx_team_members_reg_number ON team_members(reg_number);`)
}
