package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository"
	"github.com/ria/event-planner-website/internal/service"
)

type VendorHandler struct {
	vendorService *service.VendorService
}

func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.VendorFilter{
		Category: r.URL.Query().Get("category"),
		Location: r.URL.Query().Get("location"),
	}
	if raw := r.URL.Query().Get("minRating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Invalid minRating", http.StatusBadRequest)
			return
		}
		filter.MinRating = rating
	}

	vendors, err := h.vendorService.List(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR [vendor.List] failed to list vendors: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if vendors == nil {
		vendors = []*domain.Vendor{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendors)
}

func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid vendor ID", http.StatusBadRequest)
		return
	}

	vendor, err := h.vendorService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			http.Error(w, "Vendor not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [vendor.Get] failed to get vendor: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendor)
}

func (h *VendorHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Query parameter q is required", http.StatusBadRequest)
		return
	}

	vendors, err := h.vendorService.Search(r.Context(), query)
	if err != nil {
		log.Printf("ERROR [vendor.Search] failed to search vendors: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if vendors == nil {
		vendors = []*domain.Vendor{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendors)
}
