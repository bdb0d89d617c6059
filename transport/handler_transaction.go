package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
)

// CreateTransaction handler
// @Summary Record a purchase transaction
// @Description Links an existing product and buyer; date_created is set server-side
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body model.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} model.TransactionEntity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /transaction [post]
func (s *RestHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransactionApp.CreateTransaction(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListTransactions handler
// @Summary List transactions
// @Tags Transaction
// @Produce json
// @Success 200 {array} model.TransactionEntity
// @Router /transaction [get]
func (s *RestHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	res, err := s.TransactionApp.ListTransactions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetTransaction handler
// @Summary Get one transaction
// @Tags Transaction
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} model.TransactionEntity
// @Failure 404 {object} ErrorResponse
// @Router /transaction/{id} [get]
func (s *RestHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransactionApp.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteTransaction handler
// @Summary Delete transaction
// @Description Removes the transaction and returns the deleted record
// @Tags Transaction
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} model.TransactionEntity
// @Failure 404 {object} ErrorResponse
// @Router /transaction/{id} [delete]
func (s *RestHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransactionApp.DeleteTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
