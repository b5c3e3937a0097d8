package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// CookieName returns the name of the visitor cookie of a campaign.
func CookieName(campaignID int64) string {
	return "fv_" + strconv.FormatInt(campaignID, 10)
}

// cookieToken reads the visitor cookie once the campaign is known.
func cookieToken(r *http.Request) func(int64) string {
	return func(campaignID int64) string {
		c, err := r.Cookie(CookieName(campaignID))
		if err != nil {
			return ""
		}
		return c.Value
	}
}

func (h *Handler) setVisitorCookie(w http.ResponseWriter, v domain.Visitor) {
	// Not HttpOnly: the player and landing page scripts read the token.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(v.CampaignID),
		Value:    v.Token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func utmFrom(q url.Values) domain.UTM {
	return domain.UTM{
		Source:   q.Get("utm_source"),
		Medium:   q.Get("utm_medium"),
		Campaign: q.Get("utm_campaign"),
		Content:  q.Get("utm_content"),
		Term:     q.Get("utm_term"),
	}
}

type visitResponse struct {
	CampaignID     int64  `json:"campaignId"`
	CampaignSlug   string `json:"campaignSlug"`
	CampaignName   string `json:"campaignName"`
	VisitorID      int64  `json:"visitorId"`
	VisitorToken   string `json:"visitorToken"`
	VariationSetID int64  `json:"variationSetId"`
	VariationName  string `json:"variationName"`
	OptInPageID    *int64 `json:"optInPageId,omitempty"`
	Returning      bool   `json:"returning"`
}

// handleVisit resolves the sticky assignment of the landing page visitor.
// New visitors get the fv_{campaignId} cookie. Unknown or inactive
// campaigns and campaigns without eligible variations answer 404.
func (h *Handler) handleVisit(w http.ResponseWriter, r *http.Request) {
	resp, err := h.funnel.Visit(r.Context(), port.VisitReq{
		Slug:     chi.URLParam(r, "slug"),
		TokenFor: cookieToken(r),
		UTM:      utmFrom(r.URL.Query()),
		Referrer: r.Referer(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !resp.Returning {
		h.setVisitorCookie(w, resp.Visitor)
	}
	h.writeJSON(w, http.StatusOK, visitResponse{
		CampaignID:     resp.Campaign.ID,
		CampaignSlug:   resp.Campaign.Slug,
		CampaignName:   resp.Campaign.Name,
		VisitorID:      resp.Visitor.ID,
		VisitorToken:   resp.Visitor.Token,
		VariationSetID: resp.Variation.ID,
		VariationName:  resp.Variation.Name,
		OptInPageID:    resp.Variation.OptInPageID,
		Returning:      resp.Returning,
	})
}

type registerRequest struct {
	Email        string  `json:"email" validate:"required,email,max=320"`
	FirstName    *string `json:"firstName" validate:"omitempty,max=200"`
	VisitorToken string  `json:"visitorToken" validate:"required,max=128"`
}

type registerResponse struct {
	VisitorID      int64 `json:"visitorId"`
	VariationSetID int64 `json:"variationSetId"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.funnel.Register(r.Context(), port.RegisterReq{
		Slug:         chi.URLParam(r, "slug"),
		Email:        req.Email,
		FirstName:    req.FirstName,
		VisitorToken: req.VisitorToken,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, registerResponse{VisitorID: v.ID, VariationSetID: v.VariationSetID})
}

type ctaResponse struct {
	Text            string `json:"text"`
	URL             string `json:"url"`
	AppearAtSeconds *int   `json:"appearAtSeconds"`
}

type watchResponse struct {
	CampaignID     int64                 `json:"campaignId"`
	VisitorID      *int64                `json:"visitorId"`
	VariationSetID *int64                `json:"variationSetId"`
	Timeline       []domain.TimelineItem `json:"timeline"`
	CTA            ctaResponse           `json:"cta"`
}

// handleWatch returns the presentation timeline. The visitor is taken from
// the token query parameter, falling back to the cookie.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	tokenFor := cookieToken(r)
	if t := r.URL.Query().Get("token"); t != "" {
		tokenFor = func(int64) string { return t }
	}
	resp, err := h.funnel.Watch(r.Context(), port.WatchReq{Slug: chi.URLParam(r, "slug"), TokenFor: tokenFor})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := watchResponse{
		CampaignID: resp.Campaign.ID,
		Timeline:   resp.Timeline,
		CTA: ctaResponse{
			Text:            resp.Campaign.CTAText,
			URL:             resp.Campaign.CTAURL,
			AppearAtSeconds: resp.Campaign.CTAAppearAtSeconds,
		},
	}
	if resp.Visitor != nil {
		out.VisitorID = &resp.Visitor.ID
		out.VariationSetID = &resp.Visitor.VariationSetID
	}
	h.writeJSON(w, http.StatusOK, out)
}

type trackRequest struct {
	VisitorID      int64           `json:"visitorId" validate:"required,gt=0"`
	CampaignID     int64           `json:"campaignId" validate:"required,gt=0"`
	VariationSetID *int64          `json:"variationSetId" validate:"omitempty,gt=0"`
	EventType      string          `json:"eventType" validate:"required"`
	EventData      json.RawMessage `json:"eventData"`
}

type trackResponse struct {
	EventID int64 `json:"eventId"`
}

// handleTrack appends one event and answers 202 Accepted.
func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	e, err := h.funnel.Track(r.Context(), port.TrackReq{
		VisitorID:      req.VisitorID,
		CampaignID:     req.CampaignID,
		VariationSetID: req.VariationSetID,
		EventType:      req.EventType,
		EventData:      req.EventData,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, trackResponse{EventID: e.ID})
}
