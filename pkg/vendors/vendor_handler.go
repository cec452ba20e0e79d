package vendors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type VendorAllocationDTO struct {
	VendorId       string `json:"vendorId"`
	Category       string `json:"category"`
	Comments       string `json:"comments,omitempty"`
	AgreedPrice    string `json:"agreedPrice,omitempty"`
	PriceFinalized bool   `json:"priceFinalized"`
}

type VendorHandler struct {
	service VendorService
}

func NewVendorHandler(service VendorService) *VendorHandler {
	return &VendorHandler{service}
}

func (handler *VendorHandler) Add(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding vendor allocation")
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	var dto VendorAllocationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	allocation, err := handler.service.Add(r.Context(), eventId, dto.Category, dto.VendorId)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(AllocationToDTO(allocation)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	allocations, err := handler.service.ListForEvent(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]VendorAllocationDTO, 0, len(allocations))
	for _, allocation := range allocations {
		dtos = append(dtos, AllocationToDTO(allocation))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *VendorHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	eventId := vars["eventId"]
	vendorId := vars["vendorId"]

	var request struct {
		Comments    string `json:"comments"`
		AgreedPrice string `json:"agreedPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	allocation, err := handler.service.UpdateDetails(r.Context(), eventId, vendorId, request.Comments, request.AgreedPrice)
	if err != nil {
		if errors.Is(err, ErrAllocationNotFound) {
			http.Error(w, "Vendor allocation not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AllocationToDTO(allocation)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *VendorHandler) ToggleFinalization(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	eventId := vars["eventId"]
	vendorId := vars["vendorId"]

	allocation, err := handler.service.ToggleFinalization(r.Context(), eventId, vendorId)
	if err != nil {
		if errors.Is(err, ErrAllocationNotFound) {
			http.Error(w, "Vendor allocation not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AllocationToDTO(allocation)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *VendorHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventId := vars["eventId"]
	vendorId := vars["vendorId"]

	if err := handler.service.Remove(r.Context(), eventId, vendorId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func AllocationToDTO(allocation VendorAllocation) VendorAllocationDTO {
	return VendorAllocationDTO{
		VendorId:       allocation.VendorId,
		Category:       allocation.Category,
		Comments:       allocation.Comments,
		AgreedPrice:    allocation.AgreedPrice,
		PriceFinalized: allocation.PriceFinalized,
	}
}
