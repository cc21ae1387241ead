package adapter

import (
	"fmt"
	"strings"

	"github.com/ajinkya1806/Data-Diggers/internal/api"
	"github.com/ajinkya1806/Data-Diggers/internal/reconcile"
)

func ToUploadResponse(outcome reconcile.Outcome) api.UploadResponse {
	return api.UploadResponse{
		Message: fmt.Sprintf("%s uploaded and data saved successfully!", capitalizeSlot(outcome.Slot)),
		Data:    outcome.Record,
	}
}

func ToUpdateResponse(outcome reconcile.Outcome) api.UploadResponse {
	return api.UploadResponse{
		Message: fmt.Sprintf("%s data updated successfully!", capitalizeSlot(outcome.Slot)),
		Data:    outcome.Record,
	}
}

func ToConflictResponse(outcome reconcile.Outcome) api.ConflictResponse {
	return api.ConflictResponse{
		Message:        fmt.Sprintf("%s data already exists. Please specify which fields to update.", capitalizeSlot(outcome.Slot)),
		ExistingData:   outcome.Conflict.ExistingData,
		NewData:        outcome.Conflict.NewData,
		FieldsToUpdate: outcome.Conflict.FieldsToUpdate,
	}
}

func capitalizeSlot(slot string) string {
	if slot == "" {
		return slot
	}
	return strings.ToUpper(slot[:1]) + slot[1:]
}
