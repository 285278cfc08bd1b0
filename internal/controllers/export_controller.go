package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"contract-studio/internal/dto"
	"contract-studio/internal/services"
	"contract-studio/pkg/api"
	apperrors "contract-studio/pkg/errors"
)

const (
	fieldsSheet       = "Поля"
	placeholdersSheet = "Плейсхолдеры"
)

var (
	fieldsHeaders       = []interface{}{"Поле", "Название", "Значение"}
	placeholdersHeaders = []interface{}{"Плейсхолдер", "Значение"}
)

type ExportController struct {
	service services.ContractSessionServiceInterface
	logger  *zap.Logger
}

func NewExportController(service services.ContractSessionServiceInterface, logger *zap.Logger) *ExportController {
	return &ExportController{service: service, logger: logger}
}

// ExportXLSX выгружает анкету сессии в xlsx: поля на одном листе, плейсхолдеры на другом.
func (c *ExportController) ExportXLSX(ctx echo.Context) error {
	data, err := c.service.Export(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	f, err := buildWorkbook(data)
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось сформировать файл", err, map[string]interface{}{"session_id": data.SessionID}), c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("%s_%s.xlsx", data.FileName, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func buildWorkbook(data *dto.SessionExportDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", fieldsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(placeholdersSheet); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	f.SetSheetRow(fieldsSheet, "A1", &fieldsHeaders)
	f.SetCellStyle(fieldsSheet, "A1", "C1", style)
	for i, row := range data.Fields {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{row.Name, row.Label, row.Value}
		f.SetSheetRow(fieldsSheet, cell, &values)
	}
	f.SetColWidth(fieldsSheet, "A", "A", 40)
	f.SetColWidth(fieldsSheet, "B", "B", 35)
	f.SetColWidth(fieldsSheet, "C", "C", 60)

	f.SetSheetRow(placeholdersSheet, "A1", &placeholdersHeaders)
	f.SetCellStyle(placeholdersSheet, "A1", "B1", style)
	for i, row := range data.Placeholders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{row.Name, row.Value}
		f.SetSheetRow(placeholdersSheet, cell, &values)
	}
	f.SetColWidth(placeholdersSheet, "A", "A", 40)
	f.SetColWidth(placeholdersSheet, "B", "B", 80)

	return f, nil
}
