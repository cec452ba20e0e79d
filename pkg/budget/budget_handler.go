package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryAllocationDTO struct {
	CategoryId string  `json:"categoryId"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Selected   bool    `json:"selected"`
}

type BudgetHandler struct {
	service BudgetService
}

func NewBudgetHandler(service BudgetService) *BudgetHandler {
	return &BudgetHandler{service}
}

func (handler *BudgetHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	categories, err := handler.service.AllCategories(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]CategoryAllocationDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, AllocationToDTO(category))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) ReplaceSelection(w http.ResponseWriter, r *http.Request) {
	log.Debug("Replacing category selection")
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	var dtos []CategoryAllocationDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	selections := make([]CategoryAllocation, 0, len(dtos))
	for _, dto := range dtos {
		selections = append(selections, DTOToAllocation(dto))
	}

	if err := handler.service.ReplaceSelection(r.Context(), eventId, selections); err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *BudgetHandler) SetCategoryBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	eventId := vars["eventId"]
	categoryId := vars["categoryId"]

	var request struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	allocation, err := handler.service.SetCategoryBudget(r.Context(), eventId, categoryId, request.Amount)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
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

func AllocationToDTO(allocation CategoryAllocation) CategoryAllocationDTO {
	return CategoryAllocationDTO{
		CategoryId: allocation.CategoryId,
		Name:       allocation.Name,
		Amount:     allocation.Amount,
		Percentage: allocation.Percentage,
		Selected:   allocation.Selected,
	}
}

func DTOToAllocation(dto CategoryAllocationDTO) CategoryAllocation {
	return CategoryAllocation{
		CategoryId: dto.CategoryId,
		Name:       dto.Name,
		Amount:     dto.Amount,
		Percentage: dto.Percentage,
		Selected:   dto.Selected,
	}
}
