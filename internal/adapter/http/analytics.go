package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

func campaignID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid campaign id", port.ErrInvalidInput)
	}
	return id, nil
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	m, err := h.analytics.Metrics(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

type significanceResponse struct {
	CampaignID int64                          `json:"campaignId"`
	Variations []domain.VariationSignificance `json:"variations"`
}

func (h *Handler) handleSignificance(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rows, err := h.analytics.Significance(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, significanceResponse{CampaignID: id, Variations: rows})
}

type dropOffResponse struct {
	CampaignID int64                 `json:"campaignId"`
	Points     []domain.DropOffPoint `json:"points"`
}

func (h *Handler) handleDropOff(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	points, err := h.analytics.DropOff(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dropOffResponse{CampaignID: id, Points: points})
}

var exportHeader = []string{
	"event_id", "created_at", "event_type", "visitor_id", "visitor_token", "variation_set_id",
	"email", "first_name", "utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
	"referrer", "event_data",
}

// handleExport streams every event of the campaign joined with its
// visitor's attribution as CSV.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rows, err := h.analytics.Export(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="campaign-%d-events.csv"`, id))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(exportHeader)
	for _, row := range rows {
		_ = cw.Write([]string{
			strconv.FormatInt(row.EventID, 10),
			row.CreatedAt.UTC().Format(time.RFC3339),
			string(row.EventType),
			strconv.FormatInt(row.VisitorID, 10),
			row.VisitorToken,
			strconv.FormatInt(row.VariationSetID, 10),
			row.Email,
			row.FirstName,
			row.UTM.Source,
			row.UTM.Medium,
			row.UTM.Campaign,
			row.UTM.Content,
			row.UTM.Term,
			row.Referrer,
			string(row.EventData),
		})
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		h.logger.Error("export write error", slog.Int64("campaign_id", id), slog.Any("error", err))
	}
}
