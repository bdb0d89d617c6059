package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
)

// CreateSeller handler
// @Summary Create seller
// @Tags Seller
// @Accept json
// @Produce json
// @Param request body model.CreateSellerRequest true "Create Seller Request"
// @Success 201 {object} model.SellerEntity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /seller [post]
func (s *RestHandler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SellerApp.CreateSeller(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListSellers handler
// @Summary List sellers
// @Tags Seller
// @Produce json
// @Success 200 {array} model.SellerEntity
// @Router /seller [get]
func (s *RestHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	res, err := s.SellerApp.ListSellers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSeller handler
// @Summary Get one seller
// @Tags Seller
// @Produce json
// @Param id path int true "Seller ID"
// @Success 200 {object} model.SellerEntity
// @Failure 404 {object} ErrorResponse
// @Router /seller/{id} [get]
func (s *RestHandler) GetSeller(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SellerApp.GetSeller(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSellerProfile handler
// @Summary Get the authenticated seller's profile
// @Tags Seller
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SellerEntity
// @Failure 401 {object} ErrorResponse
// @Router /seller/me [get]
func (s *RestHandler) GetSellerProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := utilsContext.GetSellerID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.SellerApp.GetSeller(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateSeller handler
// @Summary Update seller
// @Description Updates phone, address and password; name and email are immutable
// @Tags Seller
// @Accept json
// @Produce json
// @Param id path int true "Seller ID"
// @Param request body model.UpdateSellerRequest true "Update Seller Request"
// @Success 200 {object} model.SellerEntity
// @Failure 404 {object} ErrorResponse
// @Router /seller/{id} [put]
func (s *RestHandler) UpdateSeller(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SellerApp.UpdateSeller(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteSeller handler
// @Summary Delete seller
// @Description Removes the seller and cascades to its products
// @Tags Seller
// @Produce json
// @Param id path int true "Seller ID"
// @Success 200 {object} model.SellerEntity
// @Failure 404 {object} ErrorResponse
// @Router /seller/{id} [delete]
func (s *RestHandler) DeleteSeller(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SellerApp.DeleteSeller(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Seller login
// @Description Exchange HTTP Basic credentials (seller_email / password) for a bearer token
// @Tags Auth
// @Produce json
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok || email == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SellerApp.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Seller logout
// @Description Revokes the presented bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	token := strings.TrimPrefix(auth, "Bearer ")

	if err := s.SellerApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "logged out"})
}
