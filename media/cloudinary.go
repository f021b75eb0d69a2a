package media

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader pushes photos to Cloudinary, resizing them to a
// thumbnail on the way in, and returns the secure URL.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{client: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(file *multipart.FileHeader, name string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resp, err := u.client.Upload.Upload(context.Background(), src, uploader.UploadParams{
		PublicID:       name,
		Folder:         u.folder,
		Transformation: "c_thumb,w_400,h_400",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
