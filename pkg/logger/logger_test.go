package logger

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Uploader that keeps the uploaded content in memory.
type memoryUploader struct {
	key         string
	content     []byte
	contentType string
	err         error
}

func (m *memoryUploader) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	content, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.key = key
	m.content = content
	m.contentType = contentType
	return "https://logs/" + key, nil
}

func setupTestLogger(t *testing.T) (*NewLogger, *bytes.Buffer) {
	t.Helper()

	l, err := CreateLogger()
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	var console bytes.Buffer
	l.SetOutput(&console)

	return l, &console
}

func TestInfofAndErrorf(t *testing.T) {
	l, console := setupTestLogger(t)

	l.Infof("created champion %s", "Ahri")
	l.Errorf("couldn't delete %d blobs", 2)

	out := console.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "created champion Ahri")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "couldn't delete 2 blobs")
}

func TestUploadTo(t *testing.T) {
	l, _ := setupTestLogger(t)
	uploader := &memoryUploader{}

	l.Infof("first line")
	require.NoError(t, l.UploadTo(context.Background(), uploader, "logs/api.log"))

	assert.Equal(t, "logs/api.log", uploader.key)
	assert.Equal(t, "text/plain", uploader.contentType)
	assert.Contains(t, string(uploader.content), "first line")

	// The file is cleaned after a successful upload.
	l.Infof("second line")
	require.NoError(t, l.UploadTo(context.Background(), uploader, "logs/api-2.log"))
	assert.NotContains(t, string(uploader.content), "first line")
	assert.Contains(t, string(uploader.content), "second line")
}

func TestUploadToEmptyFileSkips(t *testing.T) {
	l, _ := setupTestLogger(t)
	uploader := &memoryUploader{}

	require.NoError(t, l.UploadTo(context.Background(), uploader, "logs/api.log"))
	assert.Empty(t, uploader.key)
}

func TestUploadToErrorKeepsLines(t *testing.T) {
	l, _ := setupTestLogger(t)
	failing := &memoryUploader{err: errors.New("bucket down")}

	l.Infof("kept line")
	err := l.UploadTo(context.Background(), failing, "logs/api.log")
	assert.Error(t, err)

	l.Infof("next line")
	uploader := &memoryUploader{}
	require.NoError(t, l.UploadTo(context.Background(), uploader, "logs/api.log"))
	assert.Contains(t, string(uploader.content), "kept line")
	assert.Contains(t, string(uploader.content), "next line")
}
