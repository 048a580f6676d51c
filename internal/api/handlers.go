package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/wakala/remittance/internal/domain"
	"github.com/wakala/remittance/internal/remit"
	"github.com/wakala/remittance/internal/repository"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	orderRepo *repository.OrderRepo
	fileRepo  *repository.FileRepo
	generator *remit.Generator
	validate  *validator.Validate
	logger    zerolog.Logger
}

// --- helpers ---

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("encode response")
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// isGenerationError reports whether err is one of the generator's terminal
// validation failures, as opposed to an infrastructure fault.
func isGenerationError(err error) bool {
	var fieldTooLong *remit.FieldTooLongError
	var overflow *remit.AmountOverflowError
	var missing *remit.MissingFieldError
	var noAddress *remit.MissingPrimaryAddressError
	var delimiter *remit.DelimiterError
	return errors.As(err, &fieldTooLong) ||
		errors.As(err, &overflow) ||
		errors.As(err, &missing) ||
		errors.As(err, &noAddress) ||
		errors.As(err, &delimiter) ||
		errors.Is(err, remit.ErrNoReferences)
}

// --- CreateOrder ---

type createOrderReference struct {
	PaymentEntry string  `json:"payment_entry" validate:"required"`
	Supplier     string  `json:"supplier" validate:"required"`
	BankAccount  string  `json:"bank_account" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

type createOrderRequest struct {
	ID                 string                 `json:"id" validate:"required,max=140"`
	Company            string                 `json:"company" validate:"required"`
	CompanyBankAccount string                 `json:"company_bank_account" validate:"required"`
	PostingDate        string                 `json:"posting_date" validate:"required,datetime=2006-01-02"`
	References         []createOrderReference `json:"references" validate:"required,min=1,dive"`
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	postingDate, _ := time.Parse("2006-01-02", req.PostingDate)
	order := domain.PaymentOrder{
		ID:                 req.ID,
		Company:            req.Company,
		CompanyBankAccount: req.CompanyBankAccount,
		PostingDate:        postingDate,
	}
	for _, ref := range req.References {
		order.References = append(order.References, domain.PaymentReference{
			PaymentEntry: ref.PaymentEntry,
			Supplier:     ref.Supplier,
			BankAccount:  ref.BankAccount,
			Amount:       ref.Amount,
		})
	}

	if err := h.orderRepo.Create(r.Context(), order); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}

// --- ListOrders ---

func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseIntDefault(q.Get("page"), 1)
	limit := parseIntDefault(q.Get("limit"), 50)

	orders, total, err := h.orderRepo.List(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"payment_orders": orders,
		"total":          total,
		"page":           page,
		"limit":          limit,
	})
}

// --- GetOrder ---

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "payment order not found")
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// --- GenerateRemittance ---

// GenerateRemittance runs the generator for a payment order and persists
// the result as an attachment. Nothing is stored when generation fails.
func (h *Handlers) GenerateRemittance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	file, err := h.generator.Generate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.writeError(w, http.StatusNotFound, err.Error())
		case isGenerationError(err):
			h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	stored, err := h.fileRepo.Insert(r.Context(), file)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info().
		Str("payment_order", id).
		Str("file_name", stored.Name).
		Int("size", stored.Size).
		Msg("remittance file generated")

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"file_id":   stored.ID,
		"file_name": stored.Name,
		"size":      stored.Size,
		"file_url":  "/api/v1/files/" + stored.ID,
	})
}

// --- ListOrderFiles ---

func (h *Handlers) ListOrderFiles(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	files, err := h.fileRepo.ListByOrder(r.Context(), id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"payment_order": id,
		"files":         files,
	})
}

// --- DownloadFile ---

func (h *Handlers) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	file, err := h.fileRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "file not found")
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(file.Content)); err != nil {
		h.logger.Error().Err(err).Msg("write file response")
	}
}
