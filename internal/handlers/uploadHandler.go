package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ajinkya1806/Data-Diggers/internal/adapter"
	"github.com/ajinkya1806/Data-Diggers/internal/api"
	"github.com/ajinkya1806/Data-Diggers/internal/config"
	"github.com/ajinkya1806/Data-Diggers/internal/ocr"
	"github.com/ajinkya1806/Data-Diggers/internal/reconcile"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.MessageResponse{Message: "Welcome to Data Diggers Backend!"})
}

// allowedFile checks the upload against the fixed extension allow-list:
// png, jpg, jpeg, pdf.
func allowedFile(filename string) bool {
	return ocr.GetDocType(filename) != ocr.ERR
}

// UploadHandler godoc
// @Summary      Upload an identity document
// @Description  Receives an image or PDF via multipart/form-data, extracts the document fields and saves them to the caller's profile. When the slot already holds data the existing and new values are returned so the caller can pick fields to update.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "The PNG, JPG, JPEG or PDF to upload"
// @Success      200  {object}  api.UploadResponse    "Data saved, or conflict disclosure"
// @Failure      400  {object}  api.ErrorResponse     "Missing file, bad format or unknown document type"
// @Failure      500  {object}  api.ErrorResponse     "Extraction or storage failure"
// @Security     BearerAuth
// @Router       /upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		return
	}

	username := identityFromContext(r.Context())
	if username == "" {
		WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	targetDir, errString := getUploadDirectory()
	if errString != "" {
		logRH.Error("Couldn't get upload directory :", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, errString)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File is required")
		return
	}
	defer fileReader.Close()

	if fileMetadata.Filename == "" || !allowedFile(fileMetadata.Filename) {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid file format")
		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileMetadata.Filename))
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	defer os.Remove(tempFilePath)

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		destinationFileWriter.Close()
		WriteErrorResponse(w, http.StatusInternalServerError, "Write error")
		return
	}
	// the pipeline reads this file back within the same request
	if err := destinationFileWriter.Close(); err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Write error")
		return
	}

	outcome, err := handlerInstance.service.ProcessDocument(r.Context(), username, tempFilePath)
	if err != nil {
		logRH.Error("Document processing failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to extract data or detect document type")
		return
	}

	switch outcome.Kind {
	case reconcile.OutcomeRejected:
		WriteErrorResponse(w, http.StatusBadRequest, outcome.Reason)
	case reconcile.OutcomeConflict:
		writeJsonResponse(w, http.StatusOK, adapter.ToConflictResponse(outcome))
	case reconcile.OutcomeInserted:
		writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(outcome))
	default:
		WriteErrorResponse(w, http.StatusInternalServerError, "Unexpected reconciliation outcome")
	}
}

// UpdateFieldsHandler godoc
// @Summary      Update selected document fields
// @Description  Applies the field choices made after a conflict disclosure. A single invalid field name rejects the whole patch.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      api.UpdateFieldsRequest  true  "Document type and field values to overwrite"
// @Success      200  {object}  api.UploadResponse  "Updated sub-record"
// @Failure      400  {object}  api.ErrorResponse   "Invalid payload, document type or field names"
// @Security     BearerAuth
// @Router       /upload/update_fields [post]
func UpdateFieldsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		return
	}

	username := identityFromContext(r.Context())
	if username == "" {
		WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var requestData api.UpdateFieldsRequest
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("Couldn't close the update fields reader :", "error", err)
		}
	}(r.Body)

	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil ||
		requestData.DocType == "" || requestData.FieldsToUpdate == nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	outcome, err := handlerInstance.service.UpdateFields(r.Context(), username, requestData.DocType, requestData.FieldsToUpdate)
	if err != nil {
		logRH.Error("Field update failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch outcome.Kind {
	case reconcile.OutcomeRejected:
		WriteErrorResponse(w, http.StatusBadRequest, outcome.Reason)
	case reconcile.OutcomeUpdated:
		writeJsonResponse(w, http.StatusOK, adapter.ToUpdateResponse(outcome))
	default:
		WriteErrorResponse(w, http.StatusInternalServerError, "Unexpected patch outcome")
	}
}
