package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/ajinkya1806/Data-Diggers/internal/data/store"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/internal/extract"
	"github.com/ajinkya1806/Data-Diggers/internal/reconcile"
)

type mockTextSource struct {
	extractText func(ctx context.Context, path string) (string, error)
}

func (m *mockTextSource) ExtractText(ctx context.Context, path string) (string, error) {
	return m.extractText(ctx, path)
}

type passthroughEnricher struct{}

func (passthroughEnricher) FormatName(_ context.Context, raw string) string { return raw }
func (passthroughEnricher) InferGender(context.Context, string) string {
	return docModel.NotApplicable
}

type brokenStore struct {
	docModel.ProfileStore
}

func (brokenStore) FindOne(context.Context, string) (docModel.StoredProfile, bool, error) {
	return docModel.StoredProfile{}, false, errors.New("connection refused")
}

func newService(source *mockTextSource, profileStore docModel.ProfileStore) Service {
	extractor := extract.NewExtractor(passthroughEnricher{})
	return NewService(source, extractor, reconcile.NewEngine(profileStore))
}

func TestProcessDocumentSavesExtraction(t *testing.T) {
	source := &mockTextSource{extractText: func(_ context.Context, path string) (string, error) {
		if path != "/tmp/scan.png" {
			t.Errorf("unexpected path %q", path)
		}
		return "Name: Jane Doe\nDOB: 01/02/1990\n1234 5678 9012", nil
	}}

	svc := newService(source, store.InitInMemoryProfileStore())
	outcome, err := svc.ProcessDocument(context.Background(), "jane", "/tmp/scan.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != reconcile.OutcomeInserted {
		t.Fatalf("expected INSERTED, got %s", outcome.Kind)
	}
	if outcome.Record.Identifier != "123456789012" {
		t.Errorf("record not extracted: %+v", outcome.Record)
	}
}

func TestProcessDocumentTextExtractionFailure(t *testing.T) {
	source := &mockTextSource{extractText: func(context.Context, string) (string, error) {
		return "", errors.New("unreadable scan")
	}}

	svc := newService(source, store.InitInMemoryProfileStore())
	outcome, err := svc.ProcessDocument(context.Background(), "jane", "/tmp/scan.png")
	if err == nil {
		t.Fatal("expected an error")
	}
	if outcome.Kind != "" {
		t.Errorf("failed run must not report an outcome, got %s", outcome.Kind)
	}
}

func TestProcessDocumentStoreFailure(t *testing.T) {
	source := &mockTextSource{extractText: func(context.Context, string) (string, error) {
		return "1234 5678 9012\nName: Jane Doe", nil
	}}

	// both the OCR and the store failure path must leave the caller with a
	// zero outcome and an error, nothing half-reported
	svc := newService(source, brokenStore{})
	outcome, err := svc.ProcessDocument(context.Background(), "jane", "/tmp/scan.png")
	if err == nil {
		t.Fatal("expected a store error")
	}
	if outcome.Kind != "" {
		t.Errorf("failed run must not report an outcome, got %s", outcome.Kind)
	}
}

func TestUpdateFieldsDelegatesToEngine(t *testing.T) {
	svc := newService(&mockTextSource{}, store.InitInMemoryProfileStore())

	outcome, err := svc.UpdateFields(context.Background(), "jane", "aadhar", map[string]string{"name": "x y"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != reconcile.OutcomeRejected || outcome.Reason != "No updates applied" {
		t.Errorf("got %s (%s)", outcome.Kind, outcome.Reason)
	}
}
