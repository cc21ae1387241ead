package store

import (
	"strings"

	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
)

// Profiles are flattened into slot-scoped leaf fields ("pan.name",
// "aadhar.dob", ...). Both the Redis hash and the in-memory fallback share
// this representation, so the nested-path writes of the patch applier map
// straight onto it.

func recordToFields(slot string, record docModel.DocumentRecord) map[string]string {
	return map[string]string{
		slot + ".doc_type":    string(record.DocType),
		slot + ".identifier":  record.Identifier,
		slot + ".name":        record.Name,
		slot + ".dob":         record.DOB,
		slot + ".gender":      record.Gender,
		slot + ".father_name": record.FatherName,
	}
}

func recordFromFields(fields map[string]string, slot string) *docModel.DocumentRecord {
	prefix := slot + "."
	found := false
	record := docModel.NewEmptyRecord()

	for key, value := range fields {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		found = true
		switch strings.TrimPrefix(key, prefix) {
		case "doc_type":
			record.DocType = docModel.DocumentType(value)
		case "identifier":
			record.Identifier = value
		case "name":
			record.Name = value
		case "dob":
			record.DOB = value
		case "gender":
			record.Gender = value
		case "father_name":
			record.FatherName = value
		}
	}

	if !found {
		return nil
	}
	return &record
}

func profileFromFields(username string, fields map[string]string) (docModel.StoredProfile, bool) {
	if len(fields) == 0 {
		return docModel.StoredProfile{}, false
	}
	return docModel.StoredProfile{
		Username: username,
		Aadhar:   recordFromFields(fields, docModel.SlotAadhar),
		Pan:      recordFromFields(fields, docModel.SlotPAN),
	}, true
}
