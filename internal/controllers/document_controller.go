package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-studio/internal/dto"
	"contract-studio/internal/services"
	"contract-studio/pkg/api"
	apperrors "contract-studio/pkg/errors"
	"contract-studio/pkg/utils"
)

type DocumentController struct {
	service services.DocumentServiceInterface
	logger  *zap.Logger
}

func NewDocumentController(service services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{service: service, logger: logger}
}

func (c *DocumentController) parseID(ctx echo.Context, param string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.logger.Error("неверный формат ID", zap.String(param, ctx.Param(param)), zap.Error(err))
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err, nil)
	}
	return id, nil
}

func (c *DocumentController) Create(ctx echo.Context) error {
	var d dto.CreateDocumentDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.CreateDocument(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Документ создан", result)
}

func (c *DocumentController) GetAll(ctx echo.Context) error {
	page := utils.ParsePage(ctx.QueryParams())
	list, total, err := c.service.ListDocuments(ctx.Request().Context(), page)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Список документов получен", list, total, int(page.Number), int(page.Limit))
}

func (c *DocumentController) ListVersions(ctx echo.Context) error {
	id, err := c.parseID(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.ListVersions(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Версии документа получены", result)
}

func (c *DocumentController) GetVersion(ctx echo.Context) error {
	id, err := c.parseID(ctx, "versionId")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.GetVersion(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Версия документа найдена", result)
}

func (c *DocumentController) Render(ctx echo.Context) error {
	id, err := c.parseID(ctx, "id")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.RenderDocumentDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.RenderDocument(ctx.Request().Context(), id, d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Данные подставлены, создана новая версия", result)
}

func (c *DocumentController) VersionDates(ctx echo.Context) error {
	id, err := c.parseID(ctx, "versionId")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.VersionDates(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Даты в тексте найдены", result)
}
