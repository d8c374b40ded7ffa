package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"stylist/internal/domain"
	"stylist/internal/imagestore"
)

const uploadField = "file"

var errEmptyUpload = errors.New("please choose an image to upload")

type uploadError struct {
	status int
	code   string
	err    error
}

func (e *uploadError) Error() string { return e.err.Error() }

// readUpload applies the UI-boundary checks: one non-empty file in the
// accepted image types, within the size limit.
func (a *App) readUpload(w http.ResponseWriter, r *http.Request) (imagestore.File, error) {
	limit := a.Config.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit+(1<<20))
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return imagestore.File{}, &uploadError{http.StatusRequestEntityTooLarge, "too_large", fmt.Errorf("image exceeds %d MB", limit>>20)}
		}
		return imagestore.File{}, &uploadError{http.StatusBadRequest, "bad_request", errEmptyUpload}
	}
	f, header, err := r.FormFile(uploadField)
	if err != nil {
		return imagestore.File{}, &uploadError{http.StatusBadRequest, "bad_request", errEmptyUpload}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return imagestore.File{}, &uploadError{http.StatusBadRequest, "bad_request", fmt.Errorf("read upload: %w", err)}
	}
	if int64(len(data)) > limit {
		return imagestore.File{}, &uploadError{http.StatusRequestEntityTooLarge, "too_large", fmt.Errorf("image exceeds %d MB", limit>>20)}
	}
	if len(data) == 0 {
		return imagestore.File{}, &uploadError{http.StatusBadRequest, "bad_request", errEmptyUpload}
	}
	mime := imagestore.Detect(data, header.Header.Get("Content-Type"))
	if !imagestore.Accepted(mime) {
		return imagestore.File{}, &uploadError{http.StatusUnsupportedMediaType, "unsupported_media_type", domain.ErrUnsupportedMedia}
	}
	return imagestore.File{Name: strings.TrimSpace(header.Filename), Data: data, MIMEType: mime}, nil
}

func uploadFailure(err error) *uploadError {
	var ue *uploadError
	if errors.As(err, &ue) {
		return ue
	}
	return &uploadError{http.StatusInternalServerError, "internal", err}
}

// UploadSource handles the upload form.
func (a *App) UploadSource(w http.ResponseWriter, r *http.Request) {
	file, err := a.readUpload(w, r)
	if err == nil {
		_, err = a.Session.SetSource(file)
	}
	if err != nil {
		ue := uploadFailure(err)
		a.renderPage(w, ue.status, a.Session.Snapshot(), domain.Message(ue.err))
		return
	}
	redirectHome(w, r)
}

// APISetSource is the JSON variant of UploadSource.
func (a *App) APISetSource(w http.ResponseWriter, r *http.Request) {
	file, err := a.readUpload(w, r)
	if err != nil {
		ue := uploadFailure(err)
		a.error(w, ue.status, ue.code, domain.Message(ue.err))
		return
	}
	st, err := a.Session.SetSource(file)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", domain.Message(err))
		return
	}
	a.json(w, http.StatusOK, a.stateView(st))
}
