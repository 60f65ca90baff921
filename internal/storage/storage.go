// Package storage guarda los archivos adjuntos de documentos en disco y
// devuelve la URL pública bajo la que quedan servidos.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 10 << 20 // 10 MB

var allowedExtensions = map[string]struct{}{
	".pdf": {}, ".jpg": {}, ".jpeg": {}, ".png": {},
	".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
}

type Storage struct {
	dir       string
	urlPrefix string
}

// New prepara el directorio de subida y lo crea si no existe.
func New(dir, urlPrefix string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}
	return &Storage{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *Storage) Dir() string { return s.dir }

// Save escribe el archivo con un nombre aleatorio que conserva la extensión
// original y devuelve la URL con la que se puede recuperar.
func (s *Storage) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", fmt.Errorf("el archivo supera el tamaño máximo de %d MB", MaxFileSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("tipo de archivo no permitido: %s", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.urlPrefix + "/" + name, nil
}
