package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ExpenseItemDTO struct {
	Id       string  `json:"id"`
	EventId  string  `json:"eventId"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

type ExpenseUpdateDTO struct {
	Category *string  `json:"category,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Status   *string  `json:"status,omitempty"`
}

type ExpenseHandler struct {
	service ExpenseService
}

func NewExpenseHandler(service ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service}
}

func (handler *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding expense item")
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	var dto ExpenseItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dto.EventId = eventId

	item, err := handler.service.Add(r.Context(), DTOToExpense(dto))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(item)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	items, err := handler.service.ListForEvent(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ExpenseItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ExpenseToDTO(item))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	expenseId := mux.Vars(r)["expenseId"]

	var dto ExpenseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := ExpenseUpdate{
		Category: dto.Category,
		Name:     dto.Name,
		Amount:   dto.Amount,
	}
	if dto.Status != nil {
		status := Status(*dto.Status)
		update.Status = &status
	}

	item, err := handler.service.Update(r.Context(), expenseId, update)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrExpenseNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(item)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	expenseId := mux.Vars(r)["expenseId"]

	if err := handler.service.Delete(r.Context(), expenseId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func ExpenseToDTO(item ExpenseItem) ExpenseItemDTO {
	return ExpenseItemDTO{
		Id:       item.Id,
		EventId:  item.EventId,
		Category: item.Category,
		Name:     item.Name,
		Amount:   item.Amount,
		Status:   string(item.Status),
	}
}

func DTOToExpense(dto ExpenseItemDTO) ExpenseItem {
	return ExpenseItem{
		Id:       dto.Id,
		EventId:  dto.EventId,
		Category: dto.Category,
		Name:     dto.Name,
		Amount:   dto.Amount,
		Status:   Status(dto.Status),
	}
}
