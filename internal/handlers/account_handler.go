package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
	"studioledger/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	Type           string          `json:"type" binding:"required,account_type"`
	Currency       string          `json:"currency" binding:"omitempty,iso4217"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	StudioID       *uint           `json:"studio_id"`
}

// GetAccounts handles the retrieval of all accounts with derived balances
// @Summary     List accounts
// @Description List non-archived accounts with balances computed from transaction history
// @Tags        accounts
// @Produce     json
// @Success     200 {array} services.AccountWithBalance "Accounts with balances"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.accountService.GetAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// CreateAccount handles the creation of a new account
// @Summary     Create an account
// @Description Create an account; the initial balance is immutable afterwards
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Studio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.InitialBalance.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "initial_balance cannot be negative"))
		return
	}

	account, err := h.accountService.CreateAccount(req.Name, models.AccountType(req.Type), req.Currency, req.InitialBalance, req.StudioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "create", "account", account.ID, "Created account "+account.Name)
	c.JSON(http.StatusCreated, account)
}

// DeleteAccount handles archiving an account
// @Summary     Archive an account
// @Description Archive an account; transaction history is retained
// @Tags        accounts
// @Security    BearerAuth
// @Param       id path int true "Account ID"
// @Success     204 "Account archived"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.ArchiveAccount(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "archive", "account", id, "Archived account")
	c.Status(http.StatusNoContent)
}
