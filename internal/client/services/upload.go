package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/socialnet/internal/client/client"
	"github.com/dmitrijs2005/socialnet/internal/client/metrics"
	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/common"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

// MaxImageSize is the largest image accepted for upload.
const MaxImageSize = 5 * 1024 * 1024

type UploadState string

const (
	UploadIdle       UploadState = "idle"
	UploadValidating UploadState = "validating"
	UploadEncoding   UploadState = "encoding"
	UploadUploading  UploadState = "uploading"
	UploadDone       UploadState = "done"
	UploadFailed     UploadState = "failed"
)

// ImageFile is a picked file. An empty ContentType means the type is
// detected from Data.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader validates, encodes and uploads images one at a time.
type Uploader struct {
	client client.Client
	tokens TokenSource
	log    logging.Logger

	op sync.Mutex

	mu        sync.Mutex
	state     UploadState
	observers map[int]func(from, to UploadState)
	nextObs   int
}

func NewUploader(c client.Client, tokens TokenSource, log logging.Logger) *Uploader {
	return &Uploader{
		client:    c,
		tokens:    tokens,
		log:       log.With("component", "upload"),
		state:     UploadIdle,
		observers: make(map[int]func(from, to UploadState)),
	}
}

// State returns the current step of the running upload.
func (u *Uploader) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Subscribe registers fn for every state transition.
func (u *Uploader) Subscribe(fn func(from, to UploadState)) func() {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := u.nextObs
	u.nextObs++
	u.observers[id] = fn

	return func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		delete(u.observers, id)
	}
}

func (u *Uploader) transition(to UploadState) {
	u.mu.Lock()
	from := u.state
	u.state = to
	obs := make([]func(from, to UploadState), 0, len(u.observers))
	for _, fn := range u.observers {
		obs = append(obs, fn)
	}
	u.mu.Unlock()

	for _, fn := range obs {
		fn(from, to)
	}
}

// Upload sends file to the upload service and returns the public URL of
// the stored image. Nothing is sent unless the file is an image of at most
// MaxImageSize bytes and a session is held.
func (u *Uploader) Upload(ctx context.Context, file ImageFile) (string, error) {
	u.op.Lock()
	defer u.op.Unlock()

	if u.State() != UploadIdle {
		u.transition(UploadIdle)
	}

	url, err := u.upload(ctx, file)
	metrics.ObserveUpload(len(file.Data), err)
	if err != nil {
		u.log.Warn(ctx, "upload failed", "filename", file.Name, "error", err)
		u.transition(UploadFailed)
		u.transition(UploadIdle)
		return "", err
	}

	u.transition(UploadDone)
	u.log.Info(ctx, "image uploaded", "filename", file.Name, "url", url)
	return url, nil
}

func (u *Uploader) upload(ctx context.Context, file ImageFile) (string, error) {
	u.transition(UploadValidating)

	mime, err := validateImage(file)
	if err != nil {
		return "", err
	}

	u.transition(UploadEncoding)
	payload := EncodeDataURL(mime, file.Data)

	token := u.tokens.Token()
	if token == "" {
		return "", common.ErrNotAuthenticated
	}

	u.transition(UploadUploading)
	return u.client.Upload(client.WithToken(ctx, token), models.UploadRequest{Image: payload, Filename: file.Name})
}

// validateImage returns the media type of file, or a validation error when
// it is not an image or too large.
func validateImage(file ImageFile) (string, error) {
	mime := file.ContentType
	if mime == "" {
		mime = mimetype.Detect(file.Data).String()
	}
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.ToLower(strings.TrimSpace(mime))

	if !strings.HasPrefix(mime, "image/") {
		return "", common.NewValidationError("please choose an image file")
	}
	if err := CheckImageSize(int64(len(file.Data))); err != nil {
		return "", err
	}
	return mime, nil
}

// CheckImageSize rejects images larger than MaxImageSize.
func CheckImageSize(size int64) error {
	if size > MaxImageSize {
		return common.NewValidationError(fmt.Sprintf("image must not exceed %dMB", MaxImageSize/(1024*1024)))
	}
	return nil
}

// EncodeDataURL renders data as a base64 data URL.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
