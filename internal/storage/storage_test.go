package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("archivo", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, fh, err := req.FormFile("archivo")
	require.NoError(t, err)
	return fh
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "/uploads")
	require.NoError(t, err)

	url, err := s.Save(fileHeader(t, "acta.pdf", "%PDF-1.4 test"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	raw, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(raw))
}

func TestSaveNombresUnicos(t *testing.T) {
	s, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	url1, err := s.Save(fileHeader(t, "acta.pdf", "uno"))
	require.NoError(t, err)
	url2, err := s.Save(fileHeader(t, "acta.pdf", "dos"))
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2)
}

func TestSaveExtensionNoPermitida(t *testing.T) {
	s, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "script.exe", "MZ"))
	assert.Error(t, err)
}

func TestSaveArchivoDemasiadoGrande(t *testing.T) {
	s, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	fh := fileHeader(t, "acta.pdf", "contenido")
	fh.Size = MaxFileSize + 1

	_, err = s.Save(fh)
	assert.Error(t, err)
}

func TestNewCreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "uploads")
	_, err := New(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
