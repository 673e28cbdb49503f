package handlers

import (
	"context"
	"errors"
	"leaguecatalog/api/dto"
	"leaguecatalog/api/filters"
	championservice "leaguecatalog/api/services/champion"
	"leaguecatalog/pkg/apperrors"
	"leaguecatalog/pkg/database/models"
	"leaguecatalog/pkg/messages"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Room left for the text fields of the multipart form.
const maxFormOverhead = 1 << 20

// Returned by readImage when the body goes over the size cap.
var errImageTooLarge = apperrors.InvalidFile(messages.FileTooLarge)

// ChampionService is what the champion endpoints need from the service layer.
type ChampionService interface {
	ListChampions(ctx context.Context, filter *filters.ChampionListFilter) (*dto.ChampionPage, error)
	GetChampionByName(ctx context.Context, name string) (*models.Champion, error)
	CreateChampion(ctx context.Context, input *championservice.CreateChampionInput) (*models.Champion, error)
	UpdateChampion(ctx context.Context, name string, input *championservice.UpdateChampionInput) (*models.Champion, error)
	DeleteChampion(ctx context.Context, name string) error
}

// ChampionHandler is the handler for the champion endpoints.
type ChampionHandler struct {
	ChampionService ChampionService
}

type ChampionHandlerDependencies struct {
	ChampionService ChampionService
}

// NewChampionHandler creates a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		ChampionService: deps.ChampionService,
	}
}

// Helper to bind the default URI params for champions.
func (h *ChampionHandler) bindURIParams(c *gin.Context) (*filters.ChampionURIParams, error) {
	var pp filters.ChampionURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		return nil, err
	}
	return &pp, nil
}

// ListChampions returns a page of the catalog.
func (h *ChampionHandler) ListChampions(c *gin.Context) {
	var qp filters.ChampionListParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.InvalidRequest})
		return
	}

	page, err := h.ChampionService.ListChampions(c.Request.Context(), filters.NewChampionListFilter(&qp))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetChampion returns a single champion by name.
func (h *ChampionHandler) GetChampion(c *gin.Context) {
	pp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.InvalidRequest})
		return
	}

	champion, err := h.ChampionService.GetChampionByName(c.Request.Context(), pp.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, champion)
}

// CreateChampion handles the multipart champion creation.
func (h *ChampionHandler) CreateChampion(c *gin.Context) {
	image, closeImage, err := readImage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	defer closeImage()

	champion, err := h.ChampionService.CreateChampion(c.Request.Context(), &championservice.CreateChampionInput{
		Name:  c.PostForm("name"),
		Role:  c.PostForm("role"),
		Image: image,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": messages.ChampionCreated, "result": champion})
}

// UpdateChampion handles the multipart champion update, every field being optional.
// The "name" field renames the champion.
func (h *ChampionHandler) UpdateChampion(c *gin.Context) {
	pp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.InvalidRequest})
		return
	}

	// An oversized image is rejected by the service, after the champion lookup.
	image, closeImage, err := readImage(c)
	tooLarge := errors.Is(err, errImageTooLarge)
	if err != nil && !tooLarge {
		writeError(c, err)
		return
	}
	defer closeImage()

	input := &championservice.UpdateChampionInput{
		Image:         image,
		ImageTooLarge: tooLarge,
	}
	if !tooLarge {
		input.NewName = c.PostForm("name")
		input.Role = c.PostForm("role")
	}

	champion, err := h.ChampionService.UpdateChampion(c.Request.Context(), pp.Name, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messages.ChampionUpdated, "updatedChampion": champion})
}

// DeleteChampion removes a champion and its image.
func (h *ChampionHandler) DeleteChampion(c *gin.Context) {
	pp, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.InvalidRequest})
		return
	}

	if err := h.ChampionService.DeleteChampion(c.Request.Context(), pp.Name); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messages.ChampionDeleted})
}

// readImage opens the "image" file of the multipart form.
// A request without it yields a nil image, leaving the decision to the service.
// The returned close function is never nil.
func readImage(c *gin.Context) (*championservice.ImageFile, func(), error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, championservice.MaxImageSize+maxFormOverhead)

	noop := func() {}
	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return nil, noop, errImageTooLarge
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return nil, noop, nil
		}
		return nil, noop, apperrors.InvalidInput(messages.InvalidRequest)
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, apperrors.Internal(messages.FailedToCreateChampion, err)
	}

	return newImageFile(header, file), func() { file.Close() }, nil
}

func newImageFile(header *multipart.FileHeader, file multipart.File) *championservice.ImageFile {
	return &championservice.ImageFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
}
