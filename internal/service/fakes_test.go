package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/noah-isme/examdesk-api/internal/models"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

type memoryCacheRepo struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{items: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = raw
	return nil
}

type failingCacheRepo struct{}

func (failingCacheRepo) Get(context.Context, string, interface{}) error {
	return appErrors.ErrCacheMiss
}

func (failingCacheRepo) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("redis: connection refused")
}

func newTestCache(repo CacheRepository) *CacheService {
	return NewCacheService(repo, nil, time.Hour, nil, true)
}

type captureNotifier struct {
	mu    sync.Mutex
	items []models.Notification
}

func (c *captureNotifier) Notify(_ context.Context, n models.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
}

func (c *captureNotifier) all() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Notification(nil), c.items...)
}

type fakeSchools struct {
	schools []models.School
	err     error
	calls   int
}

func (f *fakeSchools) List(context.Context) ([]models.School, error) {
	f.calls++
	return f.schools, f.err
}

type fakeUsers struct {
	users []models.UserWithSchool
	err   error
}

func (f *fakeUsers) ListWithSchool(context.Context) ([]models.UserWithSchool, error) {
	return f.users, f.err
}

type fakeRecentResults struct {
	results   []models.AdminExamResult
	err       error
	lastLimit int
}

func (f *fakeRecentResults) ListRecent(_ context.Context, limit int) ([]models.AdminExamResult, error) {
	f.lastLimit = limit
	return f.results, f.err
}

type fakeCounter struct {
	count      int
	err        error
	lastStatus models.QueryStatus
}

func (f *fakeCounter) CountByStatus(_ context.Context, status models.QueryStatus) (int, error) {
	f.lastStatus = status
	return f.count, f.err
}

type fakeStudentUsers struct {
	students []models.StudentWithUser
	err      error
}

func (f *fakeStudentUsers) ListWithUser(context.Context) ([]models.StudentWithUser, error) {
	return f.students, f.err
}

type fakeDetailedResults struct {
	results []models.TeacherExamResult
	err     error
}

func (f *fakeDetailedResults) ListDetailed(context.Context) ([]models.TeacherExamResult, error) {
	return f.results, f.err
}

type fakeTeacherQueries struct {
	queries   []models.TeacherQuery
	listErr   error
	updateErr error
	updates   []models.QueryUpdate
	updatedID int64
	listCalls int
}

func (f *fakeTeacherQueries) ListWithStudent(context.Context) ([]models.TeacherQuery, error) {
	f.listCalls++
	return f.queries, f.listErr
}

func (f *fakeTeacherQueries) Update(_ context.Context, id int64, patch models.QueryUpdate) (int64, error) {
	f.updatedID = id
	f.updates = append(f.updates, patch)
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	return 1, nil
}

type fakeStudentResolver struct {
	ref    *models.StudentRef
	err    error
	lastID int64
}

func (f *fakeStudentResolver) FindByUserID(_ context.Context, userID int64) (*models.StudentRef, error) {
	f.lastID = userID
	return f.ref, f.err
}

type fakeStudentResults struct {
	results []models.StudentExamResult
	err     error
	calls   int
}

func (f *fakeStudentResults) ListByStudent(context.Context, int64) ([]models.StudentExamResult, error) {
	f.calls++
	return f.results, f.err
}

type fakeStudentQueries struct {
	queries   []models.StudentQuery
	listErr   error
	createErr error
	inserts   []models.QueryInsert
	listCalls int
}

func (f *fakeStudentQueries) ListByStudent(context.Context, int64) ([]models.StudentQuery, error) {
	f.listCalls++
	return f.queries, f.listErr
}

func (f *fakeStudentQueries) Create(_ context.Context, in models.QueryInsert) (*models.Query, error) {
	f.inserts = append(f.inserts, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	status := models.QueryPending
	if in.Status != nil {
		status = *in.Status
	}
	return &models.Query{ID: int64(len(f.inserts)), StudentID: in.StudentID, QueryText: in.QueryText, Status: status}, nil
}

func adminSession() *models.Session {
	return &models.Session{UserID: 1, Role: models.RoleAdmin, SchoolID: 1, Username: "root"}
}

func teacherSession() *models.Session {
	return &models.Session{UserID: 7, Role: models.RoleTeacher, SchoolID: 1, Username: "ayu"}
}

func studentSession() *models.Session {
	return &models.Session{UserID: 20, Role: models.RoleStudent, SchoolID: 1, Username: "budi"}
}
