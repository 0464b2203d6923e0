package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
	"studioledger/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionRequest represents the request payload for creating or
// replacing a transaction. Update is a full replacement, so both
// operations share the same shape.
type TransactionRequest struct {
	Date         string          `json:"date" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Type         string          `json:"type" binding:"required,transaction_type"`
	Description  string          `json:"description" binding:"max=500"`
	AccountID    uint            `json:"account_id" binding:"required"`
	ToAccountID  *uint           `json:"to_account_id"`
	CategoryID   *uint           `json:"category_id"`
	StudioID     *uint           `json:"studio_id"`
	ContractorID *uint           `json:"contractor_id"`
	ProjectID    *uint           `json:"project_id"`
}

func (r *TransactionRequest) toInput(createdByID *uint) (services.TransactionInput, error) {
	date, err := parseFlexibleTime(r.Date)
	if err != nil {
		return services.TransactionInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date format, expected RFC3339 or YYYY-MM-DD")
	}
	return services.TransactionInput{
		Date:         date,
		Amount:       r.Amount,
		Type:         models.TransactionType(r.Type),
		Description:  r.Description,
		AccountID:    r.AccountID,
		ToAccountID:  r.ToAccountID,
		CategoryID:   r.CategoryID,
		StudioID:     r.StudioID,
		ContractorID: r.ContractorID,
		ProjectID:    r.ProjectID,
		CreatedByID:  createdByID,
	}, nil
}

// GetTransactions handles the retrieval of transactions with optional filters
// @Summary     List transactions
// @Description List transactions newest first, with optional date range and studio filters
// @Tags        transactions
// @Produce     json
// @Param       startDate query string false "Start date (inclusive, RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "End date (inclusive, RFC3339 or YYYY-MM-DD)"
// @Param       studioId  query int    false "Filter by studio"
// @Param       limit     query int    false "Maximum number of results" default(1000)
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var filter services.TransactionFilter

	if v := c.Query("startDate"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid startDate"))
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid endDate"))
			return
		}
		filter.EndDate = &t
	}
	if v := c.Query("studioId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid studioId"))
			return
		}
		studioID := uint(id)
		filter.StudioID = &studioID
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid limit"))
			return
		}
		filter.Limit = limit
	}

	transactions, err := h.transactionService.GetTransactions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetTransaction handles the retrieval of a single transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income, expense, or transfer; account balances reflect it immediately
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Referenced entity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput(actorID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "create", "transaction", transaction.ID,
		fmt.Sprintf("Created %s transaction of %s", transaction.Type, transaction.Amount))
	c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction handles replacing an existing transaction
// @Summary     Replace a transaction
// @Description Replace a transaction in full; balances are recomputed from the new values
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Transaction ID"
// @Param       request body TransactionRequest true "New transaction values"
// @Success     200 {object} models.Transaction "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput(actorID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "update", "transaction", transaction.ID,
		fmt.Sprintf("Updated %s transaction of %s", transaction.Type, transaction.Amount))
	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction; its balance effects disappear with it
// @Tags        transactions
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "delete", "transaction", id, "Deleted transaction")
	c.Status(http.StatusNoContent)
}
