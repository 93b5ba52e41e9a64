package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRelation(t *testing.T) {
	fk, ok := FindRelation(TableExamResults, TableStudents)
	require.True(t, ok)
	assert.Equal(t, "exam_results_student_id_fkey", fk.Name)
	assert.Equal(t, "student_id", fk.Column)
	assert.Equal(t, "id", fk.ReferencedColumn)

	fk, ok = FindRelation(TableQueries, TableExams)
	require.True(t, ok)
	assert.True(t, fk.Nullable)

	_, ok = FindRelation(TableSchools, TableUsers)
	assert.False(t, ok)
}

func TestRelationshipsReferenceKnownTables(t *testing.T) {
	for table, fks := range Relationships {
		for _, fk := range fks {
			_, known := Relationships[fk.ReferencedTable]
			assert.Truef(t, known, "%s.%s references unknown table %s", table, fk.Column, fk.ReferencedTable)
		}
	}
}

func TestMustRelationPanicsOnUndeclared(t *testing.T) {
	assert.Panics(t, func() { MustRelation(TableSubjects, TableUsers) })
	assert.NotPanics(t, func() { MustRelation(TableUsers, TableSchools) })
}

func TestQueryUpdateEmpty(t *testing.T) {
	assert.True(t, QueryUpdate{}.Empty())
	status := QueryAnswered
	assert.False(t, QueryUpdate{Status: &status}.Empty())
}

func TestSessionHasRole(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.HasRole(RoleAdmin))

	s := &Session{Role: RoleTeacher}
	assert.True(t, s.HasRole(RoleAdmin, RoleTeacher))
	assert.False(t, s.HasRole(RoleStudent))
	assert.True(t, RoleStudent.Valid())
	assert.False(t, UserRole("guest").Valid())
}
