package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"wishlink_server/services"
)

type S3Controller struct {
	S3Service *services.S3Service
}

// GeneratePresignedURL generates a presigned URL for profile photo uploads
func (c *S3Controller) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID   string `json:"userId" validate:"required"`
		FileName string `json:"fileName" validate:"required"`
		FileType string `json:"fileType" validate:"required"`
		FileSize int64  `json:"fileSize" validate:"required,gt=0"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(r.Context(), payload.UserID, payload.FileName, payload.FileType, payload.FileSize)
	if err != nil {
		log.Printf("Error generating pre-signed URL: %v", err)
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GetPresignedReadURL generates a presigned URL for reading a stored photo
func (c *S3Controller) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	url, err := c.S3Service.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		http.Error(w, "Failed to generate read pre-signed URL", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
