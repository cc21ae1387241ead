package reconcile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ajinkya1806/Data-Diggers/internal/data/store"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
)

func aadharRecord() docModel.DocumentRecord {
	return docModel.DocumentRecord{
		DocType:    docModel.DocTypeAadhar,
		Identifier: "123456789012",
		Name:       "Jane Doe",
		DOB:        "01/02/1990",
		Gender:     docModel.NotApplicable,
		FatherName: docModel.NotApplicable,
	}
}

func panRecord() docModel.DocumentRecord {
	return docModel.DocumentRecord{
		DocType:    docModel.DocTypePAN,
		Identifier: "ABCDE1234F",
		Name:       "Ravi Kumar",
		DOB:        "15-08-1985",
		Gender:     "Male",
		FatherName: "Suresh Kumar",
	}
}

func TestReconcileInsertsNewSlot(t *testing.T) {
	engine := NewEngine(store.InitInMemoryProfileStore())
	ctx := context.Background()

	outcome, err := engine.Reconcile(ctx, "jane", aadharRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != OutcomeInserted {
		t.Fatalf("expected INSERTED, got %s", outcome.Kind)
	}
	if outcome.Slot != docModel.SlotAadhar {
		t.Errorf("expected aadhar slot, got %q", outcome.Slot)
	}
	if outcome.Record != aadharRecord() {
		t.Errorf("inserted record mismatch: %+v", outcome.Record)
	}
}

func TestReconcileSlotsAreIndependent(t *testing.T) {
	engine := NewEngine(store.InitInMemoryProfileStore())
	ctx := context.Background()

	if outcome, _ := engine.Reconcile(ctx, "jane", aadharRecord()); outcome.Kind != OutcomeInserted {
		t.Fatalf("aadhar insert failed: %s", outcome.Kind)
	}
	// a pan upload for the same user must not conflict with the aadhar slot
	outcome, err := engine.Reconcile(ctx, "jane", panRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != OutcomeInserted {
		t.Errorf("expected independent PAN insert, got %s", outcome.Kind)
	}
}

func TestReconcileConflictOnPopulatedSlot(t *testing.T) {
	engine := NewEngine(store.InitInMemoryProfileStore())
	ctx := context.Background()

	first := aadharRecord()
	if _, err := engine.Reconcile(ctx, "jane", first); err != nil {
		t.Fatal(err)
	}

	// identical content still conflicts, the check is existence-based
	outcome, err := engine.Reconcile(ctx, "jane", first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != OutcomeConflict {
		t.Fatalf("expected CONFLICT, got %s", outcome.Kind)
	}
	if outcome.Conflict == nil {
		t.Fatal("conflict disclosure missing")
	}
	if outcome.Conflict.ExistingData != first {
		t.Errorf("existing data mismatch: %+v", outcome.Conflict.ExistingData)
	}
	if outcome.Conflict.NewData != first {
		t.Errorf("new data mismatch: %+v", outcome.Conflict.NewData)
	}
	if !reflect.DeepEqual(outcome.Conflict.FieldsToUpdate, docModel.UpdatableFields) {
		t.Errorf("fields to update should be the fixed allow-list, got %v", outcome.Conflict.FieldsToUpdate)
	}
	for _, f := range outcome.Conflict.FieldsToUpdate {
		if f == "father_name" {
			t.Error("father_name must not be offered for update")
		}
	}
}

func TestReconcileRejectsUnknownType(t *testing.T) {
	engine := NewEngine(store.InitInMemoryProfileStore())

	record := docModel.NewEmptyRecord()
	outcome, err := engine.Reconcile(context.Background(), "jane", record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != OutcomeRejected {
		t.Fatalf("expected REJECTED, got %s", outcome.Kind)
	}
	if outcome.Reason != "Unknown document type 'unknown' detected" {
		t.Errorf("unexpected reason: %q", outcome.Reason)
	}
}

type failingStore struct {
	docModel.ProfileStore
}

func (failingStore) FindOne(context.Context, string) (docModel.StoredProfile, bool, error) {
	return docModel.StoredProfile{}, false, errors.New("connection refused")
}

func TestReconcilePropagatesStoreErrors(t *testing.T) {
	engine := NewEngine(failingStore{})
	if _, err := engine.Reconcile(context.Background(), "jane", aadharRecord()); err == nil {
		t.Error("expected a store error")
	}
}

func TestApplyPatch(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *Engine {
		t.Helper()
		engine := NewEngine(store.InitInMemoryProfileStore())
		if _, err := engine.Reconcile(ctx, "jane", aadharRecord()); err != nil {
			t.Fatal(err)
		}
		return engine
	}

	t.Run("updates selected fields", func(t *testing.T) {
		engine := setup(t)
		outcome, err := engine.ApplyPatch(ctx, "jane", "Aadhar", map[string]string{
			"name": "Jane A Doe",
			"dob":  "02/02/1990",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Kind != OutcomeUpdated {
			t.Fatalf("expected UPDATED, got %s (%s)", outcome.Kind, outcome.Reason)
		}
		if outcome.Record.Name != "Jane A Doe" || outcome.Record.DOB != "02/02/1990" {
			t.Errorf("patched record mismatch: %+v", outcome.Record)
		}
		if outcome.Record.Identifier != "123456789012" {
			t.Errorf("untouched field changed: %q", outcome.Record.Identifier)
		}
	})

	t.Run("rejects whole patch on one bad field", func(t *testing.T) {
		engine := setup(t)
		outcome, err := engine.ApplyPatch(ctx, "jane", "Aadhar", map[string]string{
			"name":        "Jane A Doe",
			"father_name": "John Doe",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Kind != OutcomeRejected || outcome.Reason != "Invalid fields specified" {
			t.Fatalf("expected invalid-fields rejection, got %s (%s)", outcome.Kind, outcome.Reason)
		}
		// the valid half of the patch must not have been applied
		check, err := engine.Reconcile(ctx, "jane", aadharRecord())
		if err != nil {
			t.Fatal(err)
		}
		if check.Conflict.ExistingData.Name != "Jane Doe" {
			t.Errorf("partial patch leaked: %q", check.Conflict.ExistingData.Name)
		}
	})

	t.Run("rejects unknown document type", func(t *testing.T) {
		engine := setup(t)
		// the rejection echoes the lowercased type, not the raw input
		outcome, err := engine.ApplyPatch(ctx, "jane", "Voter", map[string]string{"name": "x y"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Kind != OutcomeRejected || outcome.Reason != "Unknown document type 'voter'" {
			t.Errorf("got %s (%s)", outcome.Kind, outcome.Reason)
		}
	})

	t.Run("identical values apply nothing", func(t *testing.T) {
		engine := setup(t)
		outcome, err := engine.ApplyPatch(ctx, "jane", "aadhar", map[string]string{"name": "Jane Doe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Kind != OutcomeRejected || outcome.Reason != "No updates applied" {
			t.Errorf("got %s (%s)", outcome.Kind, outcome.Reason)
		}
	})

	t.Run("absent profile applies nothing", func(t *testing.T) {
		engine := NewEngine(store.InitInMemoryProfileStore())
		outcome, err := engine.ApplyPatch(ctx, "ghost", "pan", map[string]string{"name": "x y"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Kind != OutcomeRejected || outcome.Reason != "No updates applied" {
			t.Errorf("got %s (%s)", outcome.Kind, outcome.Reason)
		}
	})
}
