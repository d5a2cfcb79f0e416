package http

import (
	"errors"
	"net/http"
	"strconv"

	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/usecase/clients"

	"github.com/labstack/echo/v4"
)

type ClientHandler struct{ uc *clients.Usecase }

func NewClientHandler(uc *clients.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

type createClientReq struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Contact        string  `json:"contact" validate:"max=50"`
	Age            int     `json:"age" validate:"gte=0,lte=120"`
	MonthlyIncome  float64 `json:"monthly_income" validate:"gte=0,dec2"`
	EmploymentType string  `json:"employment_type" validate:"max=50"`
	NumDependents  int     `json:"num_dependents" validate:"gte=0"`
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), clients.CreateClientInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

type updateClientReq struct {
	Age           int     `json:"age" validate:"gte=0,lte=120"`
	MonthlyIncome float64 `json:"monthly_income" validate:"gte=0,dec2"`
}

func (h *ClientHandler) UpdateClient(c echo.Context) error {
	var req updateClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("client_id"), clients.UpdateClientInput(req))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = n
	}
	dtos, err := h.uc.List(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"clients": dtos})
}
