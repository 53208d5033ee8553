package models

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageFile(t *testing.T) {
	svc := &CloudinaryService{maxFileSize: 1024}

	tests := []struct {
		name    string
		file    multipart.FileHeader
		wantErr string
	}{
		{
			name: "valid file within cap",
			file: multipart.FileHeader{Filename: "chair.jpg", Size: 512},
		},
		{
			name:    "over the configured cap",
			file:    multipart.FileHeader{Filename: "chair.jpg", Size: 2048},
			wantErr: "file too large",
		},
		{
			name:    "disallowed extension",
			file:    multipart.FileHeader{Filename: "chair.pdf", Size: 512},
			wantErr: "invalid file type",
		},
		{
			name: "uppercase extension accepted",
			file: multipart.FileHeader{Filename: "chair.PNG", Size: 512},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateImageFile(&tt.file)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
