package utils

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"tsapi/src/lib"
	"tsapi/src/types"

	awslib "tsapi/src/lib/aws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
)

// SaveUploadedImage validates the "image" part of a multipart request,
// stores it under a slugified key and returns (key, presigned URL).
// Non-image payloads fail with a FieldError on "image".
func SaveUploadedImage(ctx *gin.Context, baseName string) (string, *string, error) {
	file, err := ctx.FormFile("image")
	if err != nil {
		return "", nil, &types.FieldError{Field: "image", Message: "an image file is required"}
	}
	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && n == 0 {
		return "", nil, &types.FieldError{Field: "image", Message: "could not read uploaded file"}
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, &types.FieldError{
			Field:   "image",
			Message: fmt.Sprintf("expected an image payload, got %s", contentType),
		}
	}

	key := fmt.Sprintf("%s-%s%s", slug.Make(baseName), uuid.New().String(), filepath.Ext(file.Filename))
	tmp := path.Join(os.TempDir(), key)
	if err := ctx.SaveUploadedFile(file, tmp); err != nil {
		return "", nil, err
	}
	defer os.Remove(tmp)

	url, err := awslib.S3UploadAsset(key, tmp, contentType)
	if err != nil {
		return "", nil, err
	}
	if rd := lib.GetRedisClient(); rd != nil {
		rd.SetEx(context.Background(), key, *url, time.Hour)
	}
	return key, url, nil
}

// ResolveImageURL returns a shareable URL for a stored image key, reusing
// the cached presigned URL when one is still live.
func ResolveImageURL(key string) (*string, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		cached, err := rd.Get(context.Background(), key).Result()
		if err == nil && cached != "" {
			return &cached, nil
		}
		if err != nil && err != redis.Nil {
			return nil, err
		}
	}
	url, err := awslib.S3PresignAsset(key)
	if err != nil {
		return nil, err
	}
	if rd != nil {
		rd.SetEx(context.Background(), key, *url, time.Hour)
	}
	return url, nil
}
