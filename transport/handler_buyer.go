package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
)

// CreateBuyer handler
// @Summary Create buyer
// @Tags Buyer
// @Accept json
// @Produce json
// @Param request body model.CreateBuyerRequest true "Create Buyer Request"
// @Success 201 {object} model.BuyerEntity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /buyer [post]
func (s *RestHandler) CreateBuyer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateBuyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.CreateBuyer(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListBuyers handler
// @Summary List buyers
// @Tags Buyer
// @Produce json
// @Success 200 {array} model.BuyerEntity
// @Router /buyer [get]
func (s *RestHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	res, err := s.BuyerApp.ListBuyers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetBuyer handler
// @Summary Get one buyer
// @Tags Buyer
// @Produce json
// @Param id path int true "Buyer ID"
// @Success 200 {object} model.BuyerEntity
// @Failure 404 {object} ErrorResponse
// @Router /buyer/{id} [get]
func (s *RestHandler) GetBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.GetBuyer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateBuyer handler
// @Summary Update buyer
// @Description Updates phone, address and password; name and email are immutable
// @Tags Buyer
// @Accept json
// @Produce json
// @Param id path int true "Buyer ID"
// @Param request body model.UpdateBuyerRequest true "Update Buyer Request"
// @Success 200 {object} model.BuyerEntity
// @Failure 404 {object} ErrorResponse
// @Router /buyer/{id} [put]
func (s *RestHandler) UpdateBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateBuyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.UpdateBuyer(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteBuyer handler
// @Summary Delete buyer
// @Description Removes the buyer and returns the deleted record
// @Tags Buyer
// @Produce json
// @Param id path int true "Buyer ID"
// @Success 200 {object} model.BuyerEntity
// @Failure 404 {object} ErrorResponse
// @Router /buyer/{id} [delete]
func (s *RestHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.DeleteBuyer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
