package uploads

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage хранилище документов гостей на локальном диске
// Файлы получают случайные имена, исходное имя не используется
type Storage struct {
	dir     string
	maxSize int64
}

// NewStorage создает хранилище; каталог создается при необходимости
func NewStorage(dir string, maxSize int64) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: create dir %s: %v", ErrWrite, dir, err)
	}
	return &Storage{dir: dir, maxSize: maxSize}, nil
}

// MaxSize максимальный размер файла в байтах
func (s *Storage) MaxSize() int64 {
	return s.maxSize
}

// Save сохраняет документ и возвращает ссылку на него (имя файла)
// Допускаются изображения и PDF, тип определяется по содержимому
func (s *Storage) Save(ctx context.Context, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	br := bufio.NewReader(r)
	head, _ := br.Peek(512)

	contentType := http.DetectContentType(head)
	ext, ok := extensionFor(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	// читаем на байт больше лимита, чтобы отличить файл ровно в лимит
	n, err := io.Copy(f, io.LimitReader(br, s.maxSize+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	case n > s.maxSize:
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: limit %d bytes", ErrTooLarge, s.maxSize)
	case closeErr != nil:
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrWrite, closeErr)
	}

	return name, nil
}

// extensions расширения по типу, определенному http.DetectContentType
var extensions = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/bmp":       ".bmp",
	"image/x-icon":    ".ico",
	"image/avif":      ".avif",
}

// extensionFor выбирает расширение только по содержимому файла
// Изображение неизвестного подтипа сохраняется без расширения
func extensionFor(contentType string) (string, bool) {
	if ext, ok := extensions[contentType]; ok {
		return ext, true
	}
	if strings.HasPrefix(contentType, "image/") {
		return "", true
	}
	return "", false
}
