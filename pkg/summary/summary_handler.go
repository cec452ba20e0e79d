package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/planhive/planhive/pkg/event"
)

type CategorySummaryDTO struct {
	CategoryId   string  `json:"categoryId"`
	Name         string  `json:"name"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	PercentSpent float64 `json:"percentSpent"`
}

type BudgetOverviewDTO struct {
	TotalBudget    float64              `json:"totalBudget"`
	TotalAllocated float64              `json:"totalAllocated"`
	TotalSpent     float64              `json:"totalSpent"`
	TotalRemaining float64              `json:"totalRemaining"`
	PerCategory    []CategorySummaryDTO `json:"perCategory"`
}

type ProgressDTO struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

type SummaryHandler struct {
	service SummaryService
}

func NewSummaryHandler(service SummaryService) *SummaryHandler {
	return &SummaryHandler{service}
}

func (handler *SummaryHandler) CategorySummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	eventId := vars["eventId"]
	categoryId := vars["categoryId"]

	categorySummary, err := handler.service.CategorySummary(r.Context(), eventId, categoryId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summaryToDTO(categorySummary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SummaryHandler) BudgetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	overview, err := handler.service.EventBudgetOverview(r.Context(), eventId)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := BudgetOverviewDTO{
		TotalBudget:    overview.TotalBudget,
		TotalAllocated: overview.TotalAllocated,
		TotalSpent:     overview.TotalSpent,
		TotalRemaining: overview.TotalRemaining,
		PerCategory:    make([]CategorySummaryDTO, 0, len(overview.PerCategory)),
	}
	for _, categorySummary := range overview.PerCategory {
		dto.PerCategory = append(dto.PerCategory, summaryToDTO(categorySummary))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SummaryHandler) Progress(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	progress, err := handler.service.EventProgress(r.Context(), eventId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ProgressDTO{
		Completed: progress.Completed,
		Total:     progress.Total,
		Percent:   progress.Percent,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func summaryToDTO(categorySummary CategorySummary) CategorySummaryDTO {
	return CategorySummaryDTO{
		CategoryId:   categorySummary.CategoryId,
		Name:         categorySummary.Name,
		Budget:       categorySummary.Budget,
		Spent:        categorySummary.Spent,
		Remaining:    categorySummary.Remaining,
		PercentSpent: categorySummary.PercentSpent,
	}
}
