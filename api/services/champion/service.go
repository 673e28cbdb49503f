package championservice

import (
	"context"
	"errors"
	"io"
	"leaguecatalog/api/dto"
	"leaguecatalog/api/filters"
	repositories "leaguecatalog/api/repositories/champion"
	"leaguecatalog/pkg/apperrors"
	"leaguecatalog/pkg/database/models"
	"leaguecatalog/pkg/messages"
	"leaguecatalog/pkg/redis"
	"leaguecatalog/pkg/roles"
	"leaguecatalog/pkg/storage"
	"strings"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MaxImageSize is the largest accepted champion image, in bytes.
const MaxImageSize = 5 << 20

var acceptedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
	"image/webp": {},
}

// BlobStore is where champion images live.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (string, error)
}

// MutationLocker serializes writes on the same champion name.
type MutationLocker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// ImageFile is an uploaded image as received from the client.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type CreateChampionInput struct {
	Name  string
	Role  string
	Image *ImageFile
}

// UpdateChampionInput holds the optional changes. Empty values keep the current ones.
// ImageTooLarge reports an upload that was cut off before it could be read.
type UpdateChampionInput struct {
	NewName       string
	Role          string
	Image         *ImageFile
	ImageTooLarge bool
}

// ChampionService owns the champion catalog and its images.
type ChampionService struct {
	blobStore          BlobStore
	locker             MutationLocker
	logger             Logger
	ChampionRepository repositories.ChampionRepository
}

// ChampionServiceDeps is the dependency list for the champion service.
type ChampionServiceDeps struct {
	DB        *gorm.DB
	BlobStore BlobStore
	Locker    MutationLocker
	Logger    Logger
}

// NewChampionService creates a champion service.
func NewChampionService(deps *ChampionServiceDeps) *ChampionService {
	locker := deps.Locker
	if locker == nil {
		locker = noopLocker{}
	}

	return &ChampionService{
		blobStore:          deps.BlobStore,
		locker:             locker,
		logger:             deps.Logger,
		ChampionRepository: repositories.NewChampionRepository(deps.DB),
	}
}

// NormalizeName returns the canonical form of a champion name: trimmed, first letter upper and the rest lower.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// ListChampions returns a single page of champions ordered by name.
func (cs *ChampionService) ListChampions(ctx context.Context, filter *filters.ChampionListFilter) (*dto.ChampionPage, error) {
	champions, err := cs.ChampionRepository.FindPage(ctx, filter.Offset(), filter.Limit)
	if err != nil {
		cs.logger.Errorf("Couldn't fetch champion page %d: %v", filter.Page, err)
		return nil, apperrors.Internal(messages.FailedToFetchChampions, err)
	}

	total, err := cs.ChampionRepository.Count(ctx)
	if err != nil {
		cs.logger.Errorf("Couldn't count champions: %v", err)
		return nil, apperrors.Internal(messages.FailedToFetchChampions, err)
	}

	return &dto.ChampionPage{
		Page:           filter.Page,
		Limit:          filter.Limit,
		TotalPages:     int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		TotalChampions: total,
		Champions:      champions,
	}, nil
}

// GetChampionByName returns the champion with the given name, in any casing.
func (cs *ChampionService) GetChampionByName(ctx context.Context, name string) (*models.Champion, error) {
	return cs.findChampion(ctx, NormalizeName(name))
}

// CreateChampion validates the input, stores the image and persists the champion.
func (cs *ChampionService) CreateChampion(ctx context.Context, input *CreateChampionInput) (*models.Champion, error) {
	if err := validateImage(input.Image); err != nil {
		return nil, err
	}

	championRoles, err := roles.Parse(input.Role)
	if err != nil {
		return nil, err
	}

	name := NormalizeName(input.Name)
	if name == "" {
		return nil, apperrors.InvalidInput(messages.NameRequired)
	}

	release, err := cs.lock(ctx, name, messages.FailedToCreateChampion)
	if err != nil {
		return nil, err
	}
	defer release()

	// Refuse duplicates before the upload so nothing is left orphaned.
	if err := cs.ensureAvailable(ctx, name); err != nil {
		return nil, err
	}

	imagePath, err := cs.uploadImage(ctx, input.Image)
	if err != nil {
		return nil, apperrors.Internal(messages.FailedToCreateChampion, err)
	}

	champion := &models.Champion{
		Name:      name,
		Role:      championRoles,
		ImagePath: imagePath,
	}

	if err := cs.ChampionRepository.Create(ctx, champion); err != nil {
		cs.logger.Errorf("Couldn't save champion %s, image %s is orphaned: %v", name, imagePath, err)
		if errors.Is(err, repositories.ErrChampionExists) {
			return nil, apperrors.Conflict(messages.ChampionExists)
		}
		return nil, apperrors.Internal(messages.FailedToCreateChampion, err)
	}

	cs.logger.Infof("Champion %s created", name)
	return champion, nil
}

// UpdateChampion applies the given changes to the champion, replacing its image when a new one is sent.
func (cs *ChampionService) UpdateChampion(ctx context.Context, name string, input *UpdateChampionInput) (*models.Champion, error) {
	name = NormalizeName(name)

	release, err := cs.lock(ctx, name, messages.FailedToUpdateChampion)
	if err != nil {
		return nil, err
	}
	defer release()

	champion, err := cs.findChampion(ctx, name)
	if err != nil {
		return nil, err
	}

	// Everything is validated before touching the store.
	if input.ImageTooLarge {
		return nil, apperrors.InvalidFile(messages.FileTooLarge)
	}
	if input.Image != nil {
		if err := validateImage(input.Image); err != nil {
			return nil, err
		}
	}

	updated := *champion

	if strings.TrimSpace(input.Role) != "" {
		championRoles, err := roles.Parse(input.Role)
		if err != nil {
			return nil, err
		}
		updated.Role = championRoles
	}

	if newName := NormalizeName(input.NewName); newName != "" && newName != champion.Name {
		releaseNew, err := cs.lock(ctx, newName, messages.FailedToUpdateChampion)
		if err != nil {
			return nil, err
		}
		defer releaseNew()

		if err := cs.ensureAvailable(ctx, newName); err != nil {
			return nil, err
		}
		updated.Name = newName
	}

	if input.Image != nil {
		if err := cs.deleteImage(ctx, champion.ImagePath); err != nil {
			return nil, apperrors.Internal(messages.FailedToUpdateChampion, err)
		}

		imagePath, err := cs.uploadImage(ctx, input.Image)
		if err != nil {
			return nil, apperrors.Internal(messages.FailedToUpdateChampion, err)
		}
		updated.ImagePath = imagePath
	}

	if err := cs.ChampionRepository.Update(ctx, champion.Name, &updated); err != nil {
		cs.logger.Errorf("Couldn't update champion %s: %v", champion.Name, err)
		switch {
		case errors.Is(err, repositories.ErrChampionNotFound):
			return nil, apperrors.NotFound(messages.ChampionNotFound)
		case errors.Is(err, repositories.ErrChampionExists):
			return nil, apperrors.Conflict(messages.ChampionExists)
		}
		return nil, apperrors.Internal(messages.FailedToUpdateChampion, err)
	}

	cs.logger.Infof("Champion %s updated", updated.Name)
	return &updated, nil
}

// DeleteChampion removes the image and then the champion.
// A failed image removal keeps the champion in place.
func (cs *ChampionService) DeleteChampion(ctx context.Context, name string) error {
	name = NormalizeName(name)

	release, err := cs.lock(ctx, name, messages.FailedToDeleteChampion)
	if err != nil {
		return err
	}
	defer release()

	champion, err := cs.findChampion(ctx, name)
	if err != nil {
		return err
	}

	if err := cs.deleteImage(ctx, champion.ImagePath); err != nil {
		return apperrors.Internal(messages.FailedToDeleteChampion, err)
	}

	if err := cs.ChampionRepository.Delete(ctx, champion.ID); err != nil {
		cs.logger.Errorf("Couldn't delete champion %s after removing its image: %v", name, err)
		if errors.Is(err, repositories.ErrChampionNotFound) {
			return apperrors.NotFound(messages.ChampionNotFound)
		}
		return apperrors.Internal(messages.FailedToDeleteChampion, err)
	}

	cs.logger.Infof("Champion %s deleted", name)
	return nil
}

func (cs *ChampionService) findChampion(ctx context.Context, name string) (*models.Champion, error) {
	if name == "" {
		return nil, apperrors.NotFound(messages.ChampionNotFound)
	}

	champion, err := cs.ChampionRepository.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionNotFound) {
			return nil, apperrors.NotFound(messages.ChampionNotFound)
		}

		cs.logger.Errorf("Couldn't fetch champion %s: %v", name, err)
		return nil, apperrors.Internal(messages.FailedToFetchChampion, err)
	}

	return champion, nil
}

// Fails with a conflict when the name is already taken.
func (cs *ChampionService) ensureAvailable(ctx context.Context, name string) error {
	_, err := cs.ChampionRepository.FindByName(ctx, name)
	switch {
	case err == nil:
		return apperrors.Conflict(messages.ChampionExists)
	case errors.Is(err, repositories.ErrChampionNotFound):
		return nil
	}

	cs.logger.Errorf("Couldn't check if champion %s exists: %v", name, err)
	return apperrors.Internal(messages.FailedToFetchChampion, err)
}

// A held lock is a conflict, any other locker failure is reported with failure.
func (cs *ChampionService) lock(ctx context.Context, name string, failure string) (func(), error) {
	release, err := cs.locker.Acquire(ctx, name)
	if err != nil {
		if errors.Is(err, redis.ErrLockHeld) {
			return nil, apperrors.Conflict(messages.OperationInProgress)
		}

		cs.logger.Errorf("Couldn't acquire the lock for %s: %v", name, err)
		return nil, apperrors.Internal(failure, err)
	}

	return release, nil
}

func (cs *ChampionService) uploadImage(ctx context.Context, image *ImageFile) (string, error) {
	key, err := storage.NewObjectKey(image.Filename, image.ContentType)
	if err != nil {
		return "", err
	}

	url, err := cs.blobStore.Put(ctx, key, image.Content, image.Size, image.ContentType)
	if err != nil {
		cs.logger.Errorf("Couldn't upload image %s: %v", key, err)
		return "", err
	}

	return url, nil
}

// Images outside of our bucket are not ours to remove, so they are skipped.
func (cs *ChampionService) deleteImage(ctx context.Context, imagePath string) error {
	key, err := cs.blobStore.KeyFromURL(imagePath)
	if err != nil {
		cs.logger.Infof("Skipping removal of foreign image %s: %v", imagePath, err)
		return nil
	}

	if err := cs.blobStore.Delete(ctx, key); err != nil {
		cs.logger.Errorf("Couldn't delete image %s: %v", key, err)
		return err
	}

	return nil
}

func validateImage(image *ImageFile) error {
	if image == nil || image.Content == nil {
		return apperrors.InvalidInput(messages.ImageRequired)
	}

	if _, ok := acceptedImageTypes[image.ContentType]; !ok {
		return apperrors.InvalidFile(messages.InvalidFileType)
	}

	if image.Size > MaxImageSize {
		return apperrors.InvalidFile(messages.FileTooLarge)
	}

	return nil
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}
