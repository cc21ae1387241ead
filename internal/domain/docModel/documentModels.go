package docModel

import "context"

type DocumentType string

const (
	DocTypeAadhar  DocumentType = "Aadhar"
	DocTypePAN     DocumentType = "PAN"
	DocTypeUnknown DocumentType = "Unknown"
)

// Sentinels are part of the wire contract - the extractor never errors,
// absence of a match is data.
const (
	NotFound      = "Not found"
	NotApplicable = "Not applicable"
)

// Profile slot names. The slot implies the document type, so the stored
// sub-record does not repeat it as a key.
const (
	SlotAadhar = "aadhar"
	SlotPAN    = "pan"
)

// DocumentRecord is the unit produced by the field extractor and stored in
// a profile slot.
type DocumentRecord struct {
	DocType    DocumentType `json:"doc_type"`
	Identifier string       `json:"identifier"`
	Name       string       `json:"name"`
	DOB        string       `json:"dob"`
	Gender     string       `json:"gender"`
	FatherName string       `json:"father_name"`
}

// NewEmptyRecord returns a record with every field at its sentinel.
func NewEmptyRecord() DocumentRecord {
	return DocumentRecord{
		DocType:    DocTypeUnknown,
		Identifier: NotFound,
		Name:       NotFound,
		DOB:        NotFound,
		Gender:     NotApplicable,
		FatherName: NotFound,
	}
}

// StoredProfile holds at most one record per slot. A nil slot means no
// document of that type has been saved yet.
type StoredProfile struct {
	Username string          `json:"username"`
	Aadhar   *DocumentRecord `json:"aadhar,omitempty"`
	Pan      *DocumentRecord `json:"pan,omitempty"`
}

// Slot returns the sub-record for a slot name, nil if empty.
func (p StoredProfile) Slot(slot string) *DocumentRecord {
	switch slot {
	case SlotAadhar:
		return p.Aadhar
	case SlotPAN:
		return p.Pan
	}
	return nil
}

// UpdatableFields is the fixed allow-list for the conflict disclosure and
// the patch applier. father_name is deliberately not in it.
var UpdatableFields = []string{"doc_type", "identifier", "name", "dob", "gender"}

// IsUpdatableField reports whether a patch key is allowed.
func IsUpdatableField(field string) bool {
	for _, f := range UpdatableFields {
		if f == field {
			return true
		}
	}
	return false
}

// SlotForDocType maps a document type to its profile slot,
// empty string when the type has no slot.
func SlotForDocType(docType DocumentType) string {
	switch docType {
	case DocTypeAadhar:
		return SlotAadhar
	case DocTypePAN:
		return SlotPAN
	}
	return ""
}

// ProfileStore is the record store the reconciliation engine and the patch
// applier run against. UpsertField must be a single atomic write so that
// two racing inserts resolve last-writer-wins without a lost update.
type ProfileStore interface {
	FindOne(ctx context.Context, username string) (StoredProfile, bool, error)
	UpsertField(ctx context.Context, username string, slot string, record DocumentRecord) error
	// UpdateFields applies nested-path writes ("pan.name" -> value) and
	// returns how many fields actually changed.
	UpdateFields(ctx context.Context, username string, fields map[string]string) (int64, error)
}
