package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"contract-studio/internal/dto"
	"contract-studio/internal/services"
	"contract-studio/pkg/api"
	apperrors "contract-studio/pkg/errors"
)

type ContractSessionController struct {
	service services.ContractSessionServiceInterface
	logger  *zap.Logger
}

func NewContractSessionController(service services.ContractSessionServiceInterface, logger *zap.Logger) *ContractSessionController {
	return &ContractSessionController{service: service, logger: logger}
}

func (c *ContractSessionController) Create(ctx echo.Context) error {
	result, err := c.service.Create(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Сессия анкеты создана", result)
}

func (c *ContractSessionController) Get(ctx echo.Context) error {
	result, err := c.service.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Сессия анкеты найдена", result)
}

func (c *ContractSessionController) Delete(ctx echo.Context) error {
	if err := c.service.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Сессия анкеты удалена", struct{}{})
}

func (c *ContractSessionController) UpdateField(ctx echo.Context) error {
	var d dto.UpdateFieldDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.UpdateField(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Поле обновлено", result)
}

func (c *ContractSessionController) Merge(ctx echo.Context) error {
	var d dto.MergeDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.Merge(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Данные извлечения применены", result)
}

func (c *ContractSessionController) Reset(ctx echo.Context) error {
	result, err := c.service.Reset(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Анкета сброшена", result)
}

func (c *ContractSessionController) Preview(ctx echo.Context) error {
	result, err := c.service.Preview(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Предпросмотр сформирован", result)
}

func (c *ContractSessionController) Render(ctx echo.Context) error {
	var d dto.RenderTextDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.Render(ctx.Request().Context(), ctx.Param("id"), d.Text)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Текст сформирован", result)
}

func (c *ContractSessionController) Placeholders(ctx echo.Context) error {
	return api.SuccessOne(ctx, http.StatusOK, "Каталог плейсхолдеров", c.service.Placeholders())
}
