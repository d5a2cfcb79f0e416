package http

import (
	"errors"
	"net/http"
	"time"

	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/domain/loan"
	"intellidebt-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *ledger.Usecase }

func NewLoanHandler(uc *ledger.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	ClientID        string    `json:"client_id" validate:"required,hex32"`
	Principal       float64   `json:"principal" validate:"required,gt=0,dec2"`
	InterestRate    float64   `json:"interest_rate" validate:"gte=0,lte=1"`
	TenureMonths    int       `json:"tenure_months" validate:"required,gte=1,lte=480"`
	CollateralValue float64   `json:"collateral_value" validate:"gte=0,dec2"`
	DueDate         time.Time `json:"due_date"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateLoan(c.Request().Context(), ledger.CreateLoanInput{
		ClientID:        req.ClientID,
		Principal:       req.Principal,
		InterestRate:    req.InterestRate,
		TenureMonths:    req.TenureMonths,
		CollateralValue: req.CollateralValue,
		DueDate:         req.DueDate,
	})
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.GetLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		if errors.Is(err, loan.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	var statuses []loan.Status
	if s := c.QueryParam("status"); s != "" {
		switch loan.Status(s) {
		case loan.StatusActive, loan.StatusPaid, loan.StatusDefaulted:
			statuses = append(statuses, loan.Status(s))
		default:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status filter"})
		}
	}
	dtos, err := h.uc.ListLoans(c.Request().Context(), statuses...)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": dtos})
}

type applyPaymentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *LoanHandler) ApplyPayment(c echo.Context) error {
	var req applyPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.ApplyPayment(c.Request().Context(), c.Param("loan_id"), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, loan.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		case errors.Is(err, loan.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, loan.ErrLoanClosed):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) SettlementOffer(c echo.Context) error {
	dto, err := h.uc.GenerateSettlementOffer(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		switch {
		case errors.Is(err, loan.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		case errors.Is(err, loan.ErrAlreadySettled):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(http.StatusOK, dto)
}
