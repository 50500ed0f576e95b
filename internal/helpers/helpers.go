package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	AvatarFolder = "avatars"
	PostFolder   = "posts"
)

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// UploadImage pushes a single file to Cloudinary and returns its public URL.
// file may be a path, URL or io.Reader, per the Cloudinary SDK.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, file interface{}, folder string) (string, error) {
	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"exhibit-app"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}
	return uploadResult.SecureURL, nil
}
