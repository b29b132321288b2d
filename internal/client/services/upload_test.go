package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/socialnet/internal/client/models"
	"github.com/dmitrijs2005/socialnet/internal/common"
	"github.com/dmitrijs2005/socialnet/internal/logging"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func fakePNG(size int) []byte {
	data := make([]byte, size)
	copy(data, pngSignature)
	copy(data[len(pngSignature):], []byte{0, 0, 0, 13, 'I', 'H', 'D', 'R'})
	return data
}

type transitions struct {
	mu  sync.Mutex
	got []UploadState
}

func (tr *transitions) observe(_, to UploadState) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.got = append(tr.got, to)
}

func newUploader(c *fakeClient, token string) (*Uploader, *transitions) {
	u := NewUploader(c, staticTokens(token), logging.NewNopLogger())
	tr := &transitions{}
	u.Subscribe(tr.observe)
	return u, tr
}

func TestUpload_Accepts4MBPNGAndCallsEndpointOnce(t *testing.T) {
	c := newFakeClient()
	u, tr := newUploader(c, "T")
	data := fakePNG(4 * 1024 * 1024)

	url, err := u.Upload(context.Background(), ImageFile{Name: "cat.png", Data: data})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/img.png", url)

	assert.Equal(t, 1, c.Calls("upload"))
	assert.Equal(t, "T", c.TokenSeen("upload"))
	assert.Equal(t, "cat.png", c.LastUploadReq.Filename)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(c.LastUploadReq.Image, prefix))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(c.LastUploadReq.Image, prefix))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, decoded))

	assert.Equal(t, []UploadState{UploadValidating, UploadEncoding, UploadUploading, UploadDone}, tr.got)
	assert.Equal(t, UploadDone, u.State())
}

func TestUpload_Rejects6MBFile(t *testing.T) {
	c := newFakeClient()
	u, tr := newUploader(c, "T")

	_, err := u.Upload(context.Background(), ImageFile{Name: "big.png", ContentType: "image/png", Data: fakePNG(6 * 1024 * 1024)})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "image must not exceed 5MB", common.UserMessage(err))

	assert.Equal(t, 0, c.Calls("upload"))
	assert.Equal(t, []UploadState{UploadValidating, UploadFailed, UploadIdle}, tr.got)
	assert.Equal(t, UploadIdle, u.State())
}

func TestUpload_RejectsNonImage(t *testing.T) {
	tests := []struct {
		name string
		file ImageFile
	}{
		{"declared type", ImageFile{Name: "doc.pdf", ContentType: "application/pdf", Data: fakePNG(1024)}},
		{"sniffed type", ImageFile{Name: "notes", Data: []byte("just some plain text, not a picture")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFakeClient()
			u, _ := newUploader(c, "T")

			_, err := u.Upload(context.Background(), tt.file)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Equal(t, "please choose an image file", common.UserMessage(err))
			assert.Equal(t, 0, c.Calls("upload"))
		})
	}
}

func TestUpload_DeclaredTypeWinsOverContent(t *testing.T) {
	c := newFakeClient()
	u, _ := newUploader(c, "T")

	_, err := u.Upload(context.Background(), ImageFile{Name: "x.webp", ContentType: "image/webp; q=1", Data: fakePNG(64)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.LastUploadReq.Image, "data:image/webp;base64,"))
}

func TestUpload_RequiresSession(t *testing.T) {
	c := newFakeClient()
	u, tr := newUploader(c, "")

	_, err := u.Upload(context.Background(), ImageFile{Name: "cat.png", Data: fakePNG(1024)})
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Equal(t, 0, c.Calls("upload"))
	assert.Equal(t, []UploadState{UploadValidating, UploadEncoding, UploadFailed, UploadIdle}, tr.got)
}

func TestUpload_ServerErrorFailsWithoutRetry(t *testing.T) {
	c := newFakeClient()
	c.UploadFn = func(context.Context, models.UploadRequest) (string, error) {
		return "", &common.ResponseError{StatusCode: 400, Message: "unsupported image"}
	}
	u, tr := newUploader(c, "T")

	_, err := u.Upload(context.Background(), ImageFile{Name: "cat.png", Data: fakePNG(1024)})
	require.Error(t, err)
	assert.Equal(t, "unsupported image", common.UserMessage(err))
	assert.Equal(t, 1, c.Calls("upload"))
	assert.Equal(t, []UploadState{UploadValidating, UploadEncoding, UploadUploading, UploadFailed, UploadIdle}, tr.got)
}

func TestUploader_Unsubscribe(t *testing.T) {
	c := newFakeClient()
	u := NewUploader(c, staticTokens("T"), logging.NewNopLogger())

	n := 0
	unsubscribe := u.Subscribe(func(_, _ UploadState) { n++ })
	unsubscribe()

	_, err := u.Upload(context.Background(), ImageFile{Name: "cat.png", Data: fakePNG(16)})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEncodeDataURL(t *testing.T) {
	assert.Equal(t, "data:image/gif;base64,R0lG", EncodeDataURL("image/gif", []byte("GIF")))
}

func TestUpload_EachUploadStartsFromIdle(t *testing.T) {
	c := newFakeClient()
	u := NewUploader(c, staticTokens("T"), logging.NewNopLogger())

	type edge struct{ from, to UploadState }
	var edges []edge
	u.Subscribe(func(from, to UploadState) { edges = append(edges, edge{from, to}) })

	ctx := context.Background()
	_, err := u.Upload(ctx, ImageFile{Name: "a.png", Data: fakePNG(1024)})
	require.NoError(t, err)
	require.Equal(t, UploadDone, u.State())

	edges = nil
	_, err = u.Upload(ctx, ImageFile{Name: "b.png", Data: fakePNG(1024)})
	require.NoError(t, err)

	assert.Equal(t, []edge{
		{UploadDone, UploadIdle},
		{UploadIdle, UploadValidating},
		{UploadValidating, UploadEncoding},
		{UploadEncoding, UploadUploading},
		{UploadUploading, UploadDone},
	}, edges)
}

func TestCheckImageSize(t *testing.T) {
	require.NoError(t, CheckImageSize(MaxImageSize))

	err := CheckImageSize(MaxImageSize + 1)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "image must not exceed 5MB", common.UserMessage(err))
}
