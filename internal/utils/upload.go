package utils

import (
	"context"       // Context for S3 operations
	"fmt"           // Error formatting
	"io"            // File copying
	"mime/multipart" // Uploaded file headers
	"os"            // Local file storage
	"path/filepath" // Extension and path handling
	"strings"       // String manipulation

	"github.com/aws/aws-sdk-go-v2/aws"                // AWS helpers
	awsconfig "github.com/aws/aws-sdk-go-v2/config"   // AWS configuration loading
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager" // S3 upload manager
	"github.com/aws/aws-sdk-go-v2/service/s3"         // S3 client
	"github.com/google/uuid"                          // Unique filenames
)

// ImageExtAllowed reports whether the filename carries an allowed image extension
func ImageExtAllowed(filename string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".") // Normalize the extension
	for _, a := range allowed {
		if ext == strings.ToLower(strings.TrimSpace(a)) {
			return true // Extension is on the allowlist
		}
	}
	return false // Extension not allowed
}

// uniqueImageName builds a collision-free filename preserving the extension
func uniqueImageName(filename string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(filename)) // Random name plus original extension
}

// SaveImageLocal stores an uploaded image under dir and returns its relative path
func SaveImageLocal(file *multipart.FileHeader, dir string) (string, error) {
	// Ensure the upload directory exists
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	src, err := file.Open() // Open the uploaded file
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close() // Close source when done
	path := filepath.Join(dir, uniqueImageName(file.Filename)) // Destination path with unique name
	dst, err := os.Create(path)                                // Create the destination file
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close() // Close destination when done
	// Copy the uploaded bytes to disk
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil // Return the stored path for the product image field
}

// UploadImageS3 uploads an image to the configured S3 bucket and returns its URL
func UploadImageS3(ctx context.Context, file *multipart.FileHeader, bucket string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx) // Load AWS configuration from the environment
	if err != nil {
		return "", fmt.Errorf("load AWS config: %w", err)
	}
	uploader := manager.NewUploader(s3.NewFromConfig(cfg)) // S3 upload manager
	src, err := file.Open()                                // Open the uploaded file
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close() // Close source when done
	// Upload with a unique key to prevent overwrites
	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),                             // Target bucket
		Key:         aws.String(uniqueImageName(file.Filename)),     // Unique object key
		Body:        src,                                            // File contents
		ACL:         "public-read",                                  // Publicly readable product image
		ContentType: aws.String(file.Header.Get("Content-Type")),    // Preserve content type
	})
	if err != nil {
		return "", fmt.Errorf("upload to S3: %w", err)
	}
	return result.Location, nil // Return the public URL for the product image field
}
