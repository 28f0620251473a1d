package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/services"
)

// S3Controller issues presigned URLs for avatar uploads and reads
type S3Controller struct {
	S3 *services.S3Service
}

func NewS3Controller(s3 *services.S3Service) *S3Controller {
	return &S3Controller{S3: s3}
}

// GenerateUploadURL returns a presigned PUT URL and the object key
func (c *S3Controller) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: fileName, fileType")
		return
	}

	url, key, err := c.S3.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GenerateReadURL returns a presigned GET URL for a stored avatar
func (c *S3Controller) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := c.S3.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
