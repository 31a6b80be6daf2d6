package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"cat-collector/internal/platform/apperrors"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/access"
	"cat-collector/internal/ports/objectstore"

	"github.com/google/uuid"
)

const (
	DefaultUploadTimeout = 10 * time.Second

	// tokenLen hex chars de un UUID aleatorio como prefijo de la key.
	tokenLen = 8
)

// Config reemplaza las constantes globales de bucket/base URL.
type Config struct {
	BaseURL       string
	Bucket        string
	UploadTimeout time.Duration
}

type Service struct {
	repo     Repository
	gate     access.CatGate
	uploader objectstore.Uploader
	cfg      Config
	log      logger.Logger

	now      func() time.Time
	newToken func() string
}

func NewService(repo Repository, gate access.CatGate, uploader objectstore.Uploader, cfg Config, log logger.Logger) *Service {
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = DefaultUploadTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		gate:     gate,
		uploader: uploader,
		cfg:      cfg,
		log:      log.With(logger.Fields{"component": "photos"}),
		now:      time.Now,
		newToken: randomToken,
	}
}

func randomToken() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:tokenLen]
}

// Extension devuelve el sufijo desde el último "." (incluido); sin punto => "".
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i:]
}

// StorageKey = token + extensión del archivo original.
func StorageKey(token, filename string) string {
	return token + Extension(filename)
}

// PublicURL = base + bucket + key, sin barras duplicadas.
func PublicURL(baseURL, bucket, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + key
}

// Ingest sube la foto y registra su URL. Es best-effort:
//   - sin archivo => no-op (ok=false, err=nil)
//   - falla de subida (incluye timeout) => se loguea y se absorbe (ok=false, err=nil)
//
// Solo se devuelven errores de autorización o de persistencia posteriores a una subida exitosa.
func (s *Service) Ingest(ctx context.Context, userID, catID string, file io.Reader, size int64, filename string) (Photo, bool, error) {
	if err := s.gate.AuthorizeCat(ctx, catID, userID); err != nil {
		return Photo{}, false, err
	}
	if file == nil || size == 0 {
		return Photo{}, false, nil
	}

	key := StorageKey(s.newToken(), filename)
	if err := s.upload(ctx, key, file, size); err != nil {
		s.log.Error("photo upload failed", logger.Fields{
			"cat_id": catID,
			"bucket": s.cfg.Bucket,
			"key":    key,
			"err":    err,
		})
		return Photo{}, false, nil
	}

	p := Photo{
		ID:        uuid.NewString(),
		CatID:     catID,
		URL:       PublicURL(s.cfg.BaseURL, s.cfg.Bucket, key),
		Key:       key,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Photo{}, false, fmt.Errorf("save photo: %w", err)
	}

	s.log.Info("photo stored", logger.Fields{"cat_id": catID, "key": key})
	return p, true, nil
}

func (s *Service) upload(ctx context.Context, key string, file io.Reader, size int64) error {
	if s.uploader == nil {
		return &apperrors.UploadError{Bucket: s.cfg.Bucket, Key: key, Err: errors.New("object storage not configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.UploadTimeout)
	defer cancel()

	if err := s.uploader.Upload(ctx, s.cfg.Bucket, key, file, size, contentType(key)); err != nil {
		var ue *apperrors.UploadError
		if errors.As(err, &ue) {
			return err
		}
		return &apperrors.UploadError{Bucket: s.cfg.Bucket, Key: key, Err: err}
	}
	return nil
}

func contentType(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(Extension(key))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// ListByCat no autoriza: el llamador ya pasó por el gate del gato.
func (s *Service) ListByCat(ctx context.Context, catID string) ([]Photo, error) {
	return s.repo.ListByCat(ctx, catID)
}
