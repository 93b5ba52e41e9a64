package models

import "fmt"

// Table names as exposed by the backend.
const (
	TableClasses     = "classes"
	TableExamPapers  = "exam_papers"
	TableExamResults = "exam_results"
	TableExams       = "exams"
	TablePages       = "pages"
	TableQueries     = "queries"
	TableSchools     = "schools"
	TableStudents    = "students"
	TableSubjects    = "subjects"
	TableUsers       = "users"
)

// ForeignKey describes a single-column relation usable for nested selects.
type ForeignKey struct {
	Name             string
	Column           string
	ReferencedTable  string
	ReferencedColumn string
	// Nullable marks relations whose column may be empty; joins over them
	// must keep the parent row when no child exists.
	Nullable bool
}

// Relationships lists, per table, the foreign keys declared by the backend.
var Relationships = map[string][]ForeignKey{
	TableClasses: {
		{Name: "classes_school_id_fkey", Column: "school_id", ReferencedTable: TableSchools, ReferencedColumn: "id"},
		{Name: "classes_teacher_id_fkey", Column: "teacher_id", ReferencedTable: TableUsers, ReferencedColumn: "id"},
	},
	TableExamPapers: {
		{Name: "exam_papers_exam_id_fkey", Column: "exam_id", ReferencedTable: TableExams, ReferencedColumn: "id"},
		{Name: "exam_papers_student_id_fkey", Column: "student_id", ReferencedTable: TableStudents, ReferencedColumn: "id"},
	},
	TableExamResults: {
		{Name: "exam_results_exam_id_fkey", Column: "exam_id", ReferencedTable: TableExams, ReferencedColumn: "id"},
		{Name: "exam_results_student_id_fkey", Column: "student_id", ReferencedTable: TableStudents, ReferencedColumn: "id"},
	},
	TableExams: {
		{Name: "exams_subject_id_fkey", Column: "subject_id", ReferencedTable: TableSubjects, ReferencedColumn: "id"},
	},
	TablePages: {
		{Name: "pages_school_id_fkey", Column: "school_id", ReferencedTable: TableSchools, ReferencedColumn: "id"},
	},
	TableQueries: {
		{Name: "queries_student_id_fkey", Column: "student_id", ReferencedTable: TableStudents, ReferencedColumn: "id"},
		{Name: "queries_exam_id_fkey", Column: "exam_id", ReferencedTable: TableExams, ReferencedColumn: "id", Nullable: true},
		{Name: "queries_teacher_id_fkey", Column: "teacher_id", ReferencedTable: TableUsers, ReferencedColumn: "id", Nullable: true},
	},
	TableSchools: nil,
	TableStudents: {
		{Name: "students_class_id_fkey", Column: "class_id", ReferencedTable: TableClasses, ReferencedColumn: "id"},
		{Name: "students_user_id_fkey", Column: "user_id", ReferencedTable: TableUsers, ReferencedColumn: "id"},
	},
	TableSubjects: {
		{Name: "subjects_school_id_fkey", Column: "school_id", ReferencedTable: TableSchools, ReferencedColumn: "id"},
	},
	TableUsers: {
		{Name: "users_school_id_fkey", Column: "school_id", ReferencedTable: TableSchools, ReferencedColumn: "id"},
	},
}

// FindRelation returns the foreign key on table from that references table to.
// It reports false when the relation is undeclared or ambiguous.
func FindRelation(from, to string) (ForeignKey, bool) {
	var (
		found ForeignKey
		count int
	)
	for _, fk := range Relationships[from] {
		if fk.ReferencedTable == to {
			found = fk
			count++
		}
	}
	return found, count == 1
}

// MustRelation is FindRelation for statically known joins.
func MustRelation(from, to string) ForeignKey {
	fk, ok := FindRelation(from, to)
	if !ok {
		panic(fmt.Sprintf("models: no unique relation %s -> %s", from, to))
	}
	return fk
}
