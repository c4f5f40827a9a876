package doctor

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
	"github.com/pranavthakur-code/get-health-help/pkg/utils"
)

// Handler serves the doctor directory.
type Handler struct {
	doctors doctor.Store
}

// New creates the directory handler.
func New(doctors doctor.Store) *Handler {
	return &Handler{doctors: doctors}
}

// RegisterRoutes mounts the directory routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/doctors", h.handleListDoctors)
	r.Get("/doctors/{doctorID}", h.handleGetDoctor)
	r.Get("/specialties", h.handleListSpecialties)
}

// handleListDoctors accepts ?q=, ?specialty= and ?available=true.
func (h *Handler) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := doctor.Filter{
		Query:     query.Get("q"),
		Specialty: query.Get("specialty"),
	}
	if raw := query.Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "available must be a boolean")
			return
		}
		filter.AvailableOnly = available
	}

	utils.RespondJSON(w, http.StatusOK, h.doctors.Search(filter))
}

func (h *Handler) handleGetDoctor(w http.ResponseWriter, r *http.Request) {
	d, ok := h.doctors.FindByID(chi.URLParam(r, "doctorID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "doctor not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, d)
}

func (h *Handler) handleListSpecialties(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, doctor.Specialties())
}
