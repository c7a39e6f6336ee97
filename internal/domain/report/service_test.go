package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/domain/admin"
)

type fakeRepo struct {
	reports     map[uuid.UUID]*Report
	attachments []*Attachment
	createErr   error
	attachErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reports: make(map[uuid.UUID]*Report)}
}

func (f *fakeRepo) Create(ctx context.Context, r *Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.reports[r.ID] = r
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	return f.reports[id], nil
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]*Report, int, error) {
	out := []*Report{}
	for _, r := range f.reports {
		if filter.Status == "" || r.Status == filter.Status {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) ListApproved(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	return f.List(ctx, ListFilter{Status: StatusApproved})
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	r, ok := f.reports[id]
	if !ok {
		return ErrReportNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRepo) AddAttachment(ctx context.Context, a *Attachment) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attachments = append(f.attachments, a)
	return nil
}

func (f *fakeRepo) GetAttachments(ctx context.Context, reportID uuid.UUID) ([]*Attachment, error) {
	return f.attachments, nil
}

type fakeStorage struct {
	objects map[string][]byte
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Put(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, _ := io.ReadAll(reader)
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(f.objects[key]))), nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) GetURL(key string) string {
	return "http://files.test/" + key
}

type fakeAdmin struct {
	allow bool
}

func (f *fakeAdmin) IsAdmin(ctx context.Context, userID uuid.UUID, meta admin.TokenMeta) bool {
	return f.allow
}

func newTestService(repo *fakeRepo, st *fakeStorage, allowAdmin bool) *Service {
	return NewService(repo, st, &fakeAdmin{allow: allowAdmin}, 10)
}

func validCreateRequest() *CreateRequest {
	return &CreateRequest{
		Title:       "Pothole on Elm Street",
		Description: "A large pothole has been growing for weeks near the crosswalk.",
		Location:    "Elm St & 5th Ave",
	}
}

func TestCreateReportStartsPending(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeStorage(), false)

	result, err := svc.Create(context.Background(), validCreateRequest(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.Report.Status != StatusPending {
		t.Fatalf("new report status = %s, want pending", result.Report.Status)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
	if len(repo.reports) != 1 {
		t.Fatalf("expected 1 stored report, got %d", len(repo.reports))
	}
}

func TestCreateReportRejectsShortTitle(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeStorage(), false)

	req := validCreateRequest()
	req.Title = "AB"
	if _, err := svc.Create(context.Background(), req, uuid.Nil, nil); err == nil {
		t.Fatal("expected validation error for 2-character title")
	}
}

func TestCreateReportSanitizesInput(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeStorage(), false)

	req := validCreateRequest()
	req.Title = `<script>bad</script> streetlight out`
	result, err := svc.Create(context.Background(), req, uuid.Nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if strings.Contains(result.Report.Title, "<script>") {
		t.Fatalf("title not sanitized: %q", result.Report.Title)
	}
}

func TestCreateReportAnonymousOmitsUser(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeStorage(), false)

	req := validCreateRequest()
	req.IsAnonymous = true
	result, err := svc.Create(context.Background(), req, uuid.New(), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.Report.UserID.Valid {
		t.Fatal("anonymous report should not record a user ID")
	}
	if !result.Report.IsAnonymous {
		t.Fatal("is_anonymous flag lost")
	}
}

func TestCreateReportPartialAttachmentFailure(t *testing.T) {
	repo := newFakeRepo()
	st := newFakeStorage()
	svc := newTestService(repo, st, false)

	files := []UploadFile{
		{Name: "good.jpg", Size: 100, Reader: strings.NewReader(strings.Repeat("x", 100))},
		{Name: "bad.exe", Size: 100, Reader: strings.NewReader(strings.Repeat("x", 100))},
	}

	result, err := svc.Create(context.Background(), validCreateRequest(), uuid.Nil, files)
	if err != nil {
		t.Fatalf("create should survive a failing file: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "bad.exe") {
		t.Fatalf("warning should name the failing file: %q", result.Warnings[0])
	}
	if len(result.Report.Attachments) != 1 {
		t.Fatalf("expected 1 surviving attachment, got %d", len(result.Report.Attachments))
	}
	if len(repo.reports) != 1 {
		t.Fatal("parent row must be kept despite attachment failures")
	}
	if len(st.objects) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(st.objects))
	}
}

func TestCreateReportAllAttachmentsFailingStillSucceeds(t *testing.T) {
	repo := newFakeRepo()
	st := newFakeStorage()
	st.putErr = errors.New("bucket unavailable")
	svc := newTestService(repo, st, false)

	files := []UploadFile{
		{Name: "a.jpg", Size: 10, Reader: strings.NewReader("0123456789")},
		{Name: "b.png", Size: 10, Reader: strings.NewReader("0123456789")},
	}

	result, err := svc.Create(context.Background(), validCreateRequest(), uuid.Nil, files)
	if err != nil {
		t.Fatalf("create must not abort on upload failures: %v", err)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", result.Warnings)
	}
	if len(repo.reports) != 1 {
		t.Fatal("parent row must survive")
	}
}

func TestCreateReportTooManyAttachments(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeStorage(), false)

	files := make([]UploadFile, MaxAttachments+1)
	for i := range files {
		files[i] = UploadFile{Name: "f.jpg", Size: 1, Reader: strings.NewReader("x")}
	}
	if _, err := svc.Create(context.Background(), validCreateRequest(), uuid.Nil, files); err != ErrTooManyAttachments {
		t.Fatalf("expected ErrTooManyAttachments, got %v", err)
	}
}

func TestUpdateStatusApprovesPending(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeStorage(), true)

	result, err := svc.Create(context.Background(), validCreateRequest(), uuid.Nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), uuid.New(), admin.TokenMeta{}, result.Report.ID, StatusApproved)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Fatalf("status = %s, want approved", updated.Status)
	}
}

func TestUpdateStatusRejectsUnauthorized(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeStorage(), false)

	result, err := svc.Create(context.Background(), validCreateRequest(), uuid.Nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), admin.TokenMeta{}, result.Report.ID, StatusApproved); err != ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if repo.reports[result.Report.ID].Status != StatusPending {
		t.Fatal("status must not change on denied update")
	}
}

func TestUpdateStatusBlocksTerminalTransition(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeStorage(), true)

	result, err := svc.Create(context.Background(), validCreateRequest(), uuid.Nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), admin.TokenMeta{}, result.Report.ID, StatusApproved); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), admin.TokenMeta{}, result.Report.ID, StatusRejected); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatusUnknownReport(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeStorage(), true)

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), admin.TokenMeta{}, uuid.New(), StatusApproved); err != ErrReportNotFound {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestListRequiresAdmin(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeStorage(), false)

	if _, _, err := svc.List(context.Background(), uuid.New(), admin.TokenMeta{}, ListFilter{}); err != ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}
