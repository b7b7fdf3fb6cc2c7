package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/ulule/limiter/v3"

	"github.com/threatwatch/threatwatch/pkg/domain"
	"github.com/threatwatch/threatwatch/pkg/notify"
)

// submission is the typed payload of the public endpoint, either a
// contact message or a subscription request
type submission struct {
	Kind         string   `json:"kind"`
	Email        string   `json:"email"`
	Name         string   `json:"name,omitempty"`
	Message      string   `json:"message,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Frequency    string   `json:"frequency,omitempty"`
	MinSeverity  string   `json:"min_severity,omitempty"`
	LocalHour    int      `json:"local_hour"`
	UTCOffset    float64  `json:"utc_offset"`
	Weekday      int      `json:"weekday"`
}

const maxContactMessage = 5000

// subscribeHandler accepts the public submission payload, validates it,
// upserts the subscription and sends the verification or
// already-subscribed email. A copy goes to the admin relay,
// fire-and-forget.
func (s *Server) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req submission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	email := domain.NormalizeEmail(req.Email)
	if limited := s.rateLimit(w, r, email); limited {
		return
	}

	switch req.Kind {
	case "contact":
		s.handleContact(w, r, email, &req)
	case "subscription":
		s.handleSubscription(w, r, email, &req)
	default:
		RenderError(w, r, fmt.Errorf("kind must be contact or subscription"), http.StatusBadRequest)
	}
}

// handleContact relays a contact-form message to the admin address
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request, email string, req *submission) {
	notifyCfg := s.config.GetNotifyConfig()

	if err := domain.ValidateEmail(email); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		RenderError(w, r, fmt.Errorf("message is required"), http.StatusBadRequest)
		return
	}
	if len(req.Message) > maxContactMessage {
		RenderError(w, r, fmt.Errorf("message too long, max %d characters", maxContactMessage), http.StatusBadRequest)
		return
	}

	if notifyCfg.AdminEmail != "" {
		msg := notify.RenderContactMessage(notifyCfg.AdminEmail, email, req.Name, req.Message)
		go func() {
			if err := s.sender.Send(msg); err != nil {
				lgr.Printf("[WARN] failed to relay contact message from %s: %v", email, err)
			}
		}()
	}

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "received"})
}

// handleSubscription validates and upserts a subscription request
func (s *Server) handleSubscription(w http.ResponseWriter, r *http.Request, email string, req *submission) {
	ctx := r.Context()
	notifyCfg := s.config.GetNotifyConfig()

	sub := &domain.Subscription{
		Email:        email,
		Name:         req.Name,
		Categories:   req.Categories,
		Technologies: req.Technologies,
		Frequency:    domain.Frequency(req.Frequency),
		MinSeverity:  domain.Severity(req.MinSeverity),
		LocalHour:    req.LocalHour,
		UTCOffset:    req.UTCOffset,
		Weekday:      req.Weekday,
		Active:       true,
	}
	if sub.Frequency == "" {
		sub.Frequency = domain.FrequencyDaily
	}
	if sub.MinSeverity == "" {
		sub.MinSeverity = domain.SeverityLow
	}
	if err := domain.ValidateSubscription(sub); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	stored, err := s.db.UpsertSubscription(ctx, sub)
	if err != nil {
		lgr.Printf("[ERROR] failed to upsert subscription for %s: %v", email, err)
		RenderError(w, r, fmt.Errorf("can't save subscription"), http.StatusInternalServerError)
		return
	}

	var outbound notify.Message
	status := "updated"
	if stored.Verified() {
		outbound = notify.RenderAlreadySubscribed(stored)
	} else {
		// fresh single-use token for the verification link
		if err := s.issueToken(r, stored); err != nil {
			lgr.Printf("[ERROR] failed to issue token for %s: %v", email, err)
			RenderError(w, r, fmt.Errorf("can't save subscription"), http.StatusInternalServerError)
			return
		}
		outbound = notify.RenderVerification(stored, s.config.GetBaseURL())
		status = "pending_verification"
	}

	if err := s.sender.Send(outbound); err != nil {
		lgr.Printf("[ERROR] failed to send %s email to %s: %v", status, email, err)
		RenderError(w, r, fmt.Errorf("can't send email"), http.StatusInternalServerError)
		return
	}

	if notifyCfg.AdminEmail != "" {
		msg := notify.RenderAdminNotice(notifyCfg.AdminEmail, "subscription", email)
		go func() {
			if err := s.sender.Send(msg); err != nil {
				lgr.Printf("[WARN] failed to relay admin copy for %s: %v", email, err)
			}
		}()
	}

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": status})
}

// manageHandler sends a fresh management link for an address. The
// response never reveals whether the address is subscribed.
func (s *Server) manageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	email := domain.NormalizeEmail(req.Email)
	if err := domain.ValidateEmail(email); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	if limited := s.rateLimit(w, r, email); limited {
		return
	}

	// uniform response below this point regardless of lookup outcome
	sub, err := s.db.GetSubscription(r.Context(), email)
	if err == nil && sub.Active {
		if err := s.issueToken(r, sub); err != nil {
			lgr.Printf("[ERROR] failed to rotate token for %s: %v", email, err)
		} else if err := s.sender.Send(notify.RenderManagementLink(sub, s.config.GetBaseURL())); err != nil {
			lgr.Printf("[ERROR] failed to send management link to %s: %v", email, err)
		}
	}

	RenderJSON(w, r, http.StatusAccepted, map[string]string{
		"status": "if the address is subscribed, a management link is on its way",
	})
}

// verifyHandler redeems a verification token
func (s *Server) verifyHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		RenderError(w, r, fmt.Errorf("token is required"), http.StatusBadRequest)
		return
	}

	sub, err := s.db.GetSubscriptionByToken(r.Context(), token)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid or expired token"), http.StatusBadRequest)
		return
	}

	if err := s.db.VerifySubscription(r.Context(), sub.ID); err != nil {
		lgr.Printf("[ERROR] failed to verify subscription %d: %v", sub.ID, err)
		RenderError(w, r, fmt.Errorf("can't verify subscription"), http.StatusInternalServerError)
		return
	}

	lgr.Printf("[INFO] subscription verified for %s", sub.Email)
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "verified"})
}

// unsubscribeHandler deactivates a subscription via its token. GET
// serves the link from the email body, POST serves one-click
// unsubscribe per RFC 8058.
func (s *Server) unsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		RenderError(w, r, fmt.Errorf("token is required"), http.StatusBadRequest)
		return
	}

	sub, err := s.db.GetSubscriptionByToken(r.Context(), token)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid or expired token"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeactivateSubscription(r.Context(), sub.ID); err != nil {
		lgr.Printf("[ERROR] failed to deactivate subscription %d: %v", sub.ID, err)
		RenderError(w, r, fmt.Errorf("can't unsubscribe"), http.StatusInternalServerError)
		return
	}

	lgr.Printf("[INFO] subscription deactivated for %s", sub.Email)
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "unsubscribed"})
}

// issueToken rotates the single-use token for a subscription and
// reflects the fresh values on the passed record
func (s *Server) issueToken(r *http.Request, sub *domain.Subscription) error {
	token, err := notify.GenerateToken()
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	expires := time.Now().Add(s.config.GetNotifyConfig().TokenTTL)
	if err := s.db.RotateToken(r.Context(), sub.Email, token, expires); err != nil {
		return fmt.Errorf("rotate token: %w", err)
	}
	sub.Token = token
	sub.TokenExpires = expires
	return nil
}

// rateLimit consumes both limiter keys for the request. Both must
// pass: one closes the "spam one target" vector, the other the "spam
// from one origin" vector. Writes the 429 response when limited.
func (s *Server) rateLimit(w http.ResponseWriter, r *http.Request, email string) (limited bool) {
	ipCtx, err := s.ipLimiter.Get(r.Context(), s.ipLimiter.GetIPKey(r))
	if err != nil {
		lgr.Printf("[WARN] rate limiter failure: %v", err)
		return false // fail open, the limiter is best-effort
	}

	var addrCtx limiter.Context
	if email != "" {
		addrCtx, err = s.addrLimiter.Get(r.Context(), email)
		if err != nil {
			lgr.Printf("[WARN] rate limiter failure: %v", err)
			return false
		}
	}

	if !ipCtx.Reached && !addrCtx.Reached {
		return false
	}

	reset := ipCtx.Reset
	if addrCtx.Reached && addrCtx.Reset > reset {
		reset = addrCtx.Reset
	}
	retryAfter := time.Until(time.Unix(reset, 0))
	if retryAfter < 0 {
		retryAfter = 0
	}

	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
	RenderJSON(w, r, http.StatusTooManyRequests, map[string]string{
		"error":       "too many requests",
		"retry_after": retryAfter.Truncate(time.Second).String(),
	})
	return true
}
