package media

import "mime/multipart"

// Uploader stores an uploaded photo and returns the reference path or
// URL persisted on the entity. Resizing is the collaborator's job, not
// the handlers'.
type Uploader interface {
	Upload(file *multipart.FileHeader, name string) (string, error)
}
