package factcheck

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/domain/admin"
)

type fakeRepo struct {
	checks map[uuid.UUID]*FactCheck
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{checks: make(map[uuid.UUID]*FactCheck)}
}

func (f *fakeRepo) Create(ctx context.Context, fc *FactCheck) error {
	f.checks[fc.ID] = fc
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*FactCheck, error) {
	return f.checks[id], nil
}

func (f *fakeRepo) ListRecent(ctx context.Context, limit int) ([]*FactCheck, error) {
	out := []*FactCheck{}
	for _, fc := range f.checks {
		out = append(out, fc)
	}
	return out, nil
}

func (f *fakeRepo) List(ctx context.Context, verdict Verdict, limit, offset int) ([]*FactCheck, int, error) {
	out := []*FactCheck{}
	for _, fc := range f.checks {
		if verdict == "" || fc.Verdict == verdict {
			out = append(out, fc)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateVerdict(ctx context.Context, id uuid.UUID, verdict Verdict) error {
	fc, ok := f.checks[id]
	if !ok {
		return ErrFactCheckNotFound
	}
	fc.Verdict = verdict
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Put(ctx context.Context, key string, reader io.Reader, contentType string) error {
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

func newTestService(repo *fakeRepo, allowAdmin bool) *Service {
	return NewService(repo, newFakeStorage(), &fakeAdmin{allow: allowAdmin}, 10)
}

func TestCreateForcesQueuedVerdict(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, false)

	result, err := svc.Create(context.Background(), &CreateRequest{
		Title: "The city doubled the parks budget this year",
	}, uuid.New(), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.FactCheck.Verdict != VerdictQueued {
		t.Fatalf("new fact-check verdict = %s, want queued", result.FactCheck.Verdict)
	}
	if result.FactCheck.Attachments == nil {
		t.Fatal("attachments must be an empty array, not nil")
	}
}

func TestCreateRejectsShortClaim(t *testing.T) {
	svc := newTestService(newFakeRepo(), false)

	if _, err := svc.Create(context.Background(), &CreateRequest{Title: "abcd"}, uuid.Nil, nil); err == nil {
		t.Fatal("expected validation error for 4-character claim")
	}
}

func TestCreateWithEvidenceEmbedsAttachments(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, false)

	files := []UploadFile{
		{Name: "screenshot.png", Size: 50, Reader: strings.NewReader(strings.Repeat("x", 50))},
		{Name: "broken.exe", Size: 50, Reader: strings.NewReader(strings.Repeat("x", 50))},
	}

	result, err := svc.Create(context.Background(), &CreateRequest{
		Title: "Bus line 14 was cancelled without notice",
	}, uuid.Nil, files)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(result.FactCheck.Attachments) != 1 {
		t.Fatalf("expected 1 embedded attachment, got %d", len(result.FactCheck.Attachments))
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning for the rejected file, got %v", result.Warnings)
	}
}

func TestUpdateVerdictFollowsMachine(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, true)

	result, err := svc.Create(context.Background(), &CreateRequest{
		Title: "New bike lanes reduced traffic accidents by half",
	}, uuid.Nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	id := result.FactCheck.ID
	actor := uuid.New()

	// queued -> verified is not allowed directly
	if _, err := svc.UpdateVerdict(context.Background(), actor, admin.TokenMeta{}, id, VerdictVerified); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if _, err := svc.UpdateVerdict(context.Background(), actor, admin.TokenMeta{}, id, VerdictInProgress); err != nil {
		t.Fatalf("queued -> in-progress failed: %v", err)
	}
	fc, err := svc.UpdateVerdict(context.Background(), actor, admin.TokenMeta{}, id, VerdictVerified)
	if err != nil {
		t.Fatalf("in-progress -> verified failed: %v", err)
	}
	if fc.Verdict != VerdictVerified {
		t.Fatalf("verdict = %s, want verified", fc.Verdict)
	}

	// verified is terminal
	if _, err := svc.UpdateVerdict(context.Background(), actor, admin.TokenMeta{}, id, VerdictInProgress); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition from terminal verdict, got %v", err)
	}
}

func TestUpdateVerdictRequiresAdmin(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, false)

	result, err := svc.Create(context.Background(), &CreateRequest{
		Title: "Library hours were extended on weekends",
	}, uuid.Nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateVerdict(context.Background(), uuid.New(), admin.TokenMeta{}, result.FactCheck.ID, VerdictInProgress); err != ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUpdateVerdictRejectsUnknownVerdict(t *testing.T) {
	svc := newTestService(newFakeRepo(), true)

	if _, err := svc.UpdateVerdict(context.Background(), uuid.New(), admin.TokenMeta{}, uuid.New(), Verdict("maybe")); err != ErrInvalidVerdict {
		t.Fatalf("expected ErrInvalidVerdict, got %v", err)
	}
}
