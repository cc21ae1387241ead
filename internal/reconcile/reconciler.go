package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

type OutcomeKind string

const (
	OutcomeInserted OutcomeKind = "INSERTED"
	OutcomeConflict OutcomeKind = "CONFLICT"
	OutcomeUpdated  OutcomeKind = "UPDATED"
	OutcomeRejected OutcomeKind = "REJECTED"
)

// ConflictDisclosure is returned to the caller so they can pick which
// fields to keep. It is never persisted. FieldsToUpdate is always the
// fixed allow-list, not a diff of the two records.
type ConflictDisclosure struct {
	ExistingData   docModel.DocumentRecord `json:"existing_data"`
	NewData        docModel.DocumentRecord `json:"new_data"`
	FieldsToUpdate []string                `json:"fields_to_update"`
}

// Outcome is the tagged result the caller-facing layer maps to an HTTP
// status. Kind decides which of the other fields is meaningful.
type Outcome struct {
	Kind     OutcomeKind
	Slot     string
	Record   docModel.DocumentRecord
	Conflict *ConflictDisclosure
	Reason   string
}

type Engine struct {
	store  docModel.ProfileStore
	logger *logger_i.Logger
}

func NewEngine(store docModel.ProfileStore) *Engine {
	return &Engine{
		store:  store,
		logger: logger_i.NewLogger("Reconciler"),
	}
}

// Reconcile decides between insert and conflict disclosure for a freshly
// extracted record. The decision is existence-based, not content-based: a
// non-empty slot raises a conflict even when the new data is identical.
// Store failures come back as errors, everything else as an Outcome.
func (e *Engine) Reconcile(ctx context.Context, username string, record docModel.DocumentRecord) (Outcome, error) {
	slot := docModel.SlotForDocType(record.DocType)
	if slot == "" {
		return rejected(fmt.Sprintf("Unknown document type '%s' detected", strings.ToLower(string(record.DocType)))), nil
	}

	profile, _, err := e.store.FindOne(ctx, username)
	if err != nil {
		return Outcome{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	if existing := profile.Slot(slot); existing != nil {
		e.logger.Info("Slot already populated, disclosing conflict", "username", username, "slot", slot)
		return Outcome{
			Kind: OutcomeConflict,
			Slot: slot,
			Conflict: &ConflictDisclosure{
				ExistingData:   *existing,
				NewData:        record,
				FieldsToUpdate: docModel.UpdatableFields,
			},
		}, nil
	}

	if err := e.store.UpsertField(ctx, username, slot, record); err != nil {
		return Outcome{}, fmt.Errorf("profile upsert failed: %w", err)
	}
	e.logger.Info("Inserted document record", "username", username, "slot", slot)
	return Outcome{Kind: OutcomeInserted, Slot: slot, Record: record}, nil
}

// ApplyPatch applies a caller-supplied partial update after the conflict
// disclosure round-trip. One invalid field name rejects the whole patch -
// there is no partial application.
func (e *Engine) ApplyPatch(ctx context.Context, username string, docType string, fields map[string]string) (Outcome, error) {
	slot := strings.ToLower(docType)
	if slot != docModel.SlotAadhar && slot != docModel.SlotPAN {
		return rejected(fmt.Sprintf("Unknown document type '%s'", slot)), nil
	}

	for key := range fields {
		if !docModel.IsUpdatableField(key) {
			return rejected("Invalid fields specified"), nil
		}
	}

	paths := make(map[string]string, len(fields))
	for key, value := range fields {
		paths[slot+"."+key] = value
	}

	modified, err := e.store.UpdateFields(ctx, username, paths)
	if err != nil {
		return Outcome{}, fmt.Errorf("field update failed: %w", err)
	}
	if modified == 0 {
		// an absent profile and a no-op patch share this message
		return rejected("No updates applied"), nil
	}

	profile, found, err := e.store.FindOne(ctx, username)
	if err != nil {
		return Outcome{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	updated := profile.Slot(slot)
	if !found || updated == nil {
		return Outcome{}, fmt.Errorf("profile vanished after update for user %s", username)
	}

	e.logger.Info("Patched document record", "username", username, "slot", slot, "modified", modified)
	return Outcome{Kind: OutcomeUpdated, Slot: slot, Record: *updated}, nil
}

func rejected(reason string) Outcome {
	return Outcome{Kind: OutcomeRejected, Reason: reason}
}
