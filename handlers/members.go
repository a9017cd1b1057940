// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/equb-registry/middleware"
	"github.com/danielhkuo/equb-registry/models"
)

// MemberStore is the storage the member handlers need.
// *store.MemberStore satisfies it.
type MemberStore interface {
	ListPending(ctx context.Context) ([]models.Member, error)
	ListWinners(ctx context.Context) ([]models.Member, error)
	MarkWinner(ctx context.Context, id any) (int64, error)
	AddMember(ctx context.Context, fullName any) error
	ResetCycle(ctx context.Context) (int64, error)
}

type MemberHandler struct {
	store MemberStore
}

func NewMemberHandler(store MemberStore) *MemberHandler {
	return &MemberHandler{store: store}
}

// ListPending handles GET /members
// Returns members who have not won in the current cycle
func (h *MemberHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	members, err := h.store.ListPending(r.Context())
	if err != nil {
		log.Error("failed to list pending members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]models.PendingMember, 0, len(members))
	for _, m := range members {
		resp = append(resp, models.PendingMember{ID: m.ID, FullName: m.FullName})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ListWinners handles GET /winners
// Returns this cycle's winners, most recent draw first
func (h *MemberHandler) ListWinners(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	members, err := h.store.ListWinners(r.Context())
	if err != nil {
		log.Error("failed to list winners", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]models.Winner, 0, len(members))
	for _, m := range members {
		resp = append(resp, models.Winner{FullName: m.FullName, DrawDate: m.Win.DrawDate})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// MarkWinner handles POST /mark-winner
// An unknown or missing id still gets the confirmation; nothing is updated
func (h *MemberHandler) MarkWinner(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	var req models.MarkWinnerRequest
	if err := parseBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id := queryArg(req.ID)

	n, err := h.store.MarkWinner(r.Context(), id)
	if err != nil {
		log.Error("failed to mark winner", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if n == 0 {
		log.Warn("mark winner matched no member", "id", id)
	} else {
		log.Info("winner marked", "id", id)
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: models.MessageWinnerMarked})
}

// AddMember handles POST /add-member
func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	var req models.AddMemberRequest
	if err := parseBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.AddMember(r.Context(), queryArg(req.FullName)); err != nil {
		log.Error("failed to add member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info("member added")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: models.MessageMemberAdded})
}

// ResetCycle handles POST /reset-cycle
// Clears every winner so all members are pending again
func (h *MemberHandler) ResetCycle(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	n, err := h.store.ResetCycle(r.Context())
	if err != nil {
		log.Error("failed to reset cycle", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info("cycle reset", "members", n)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: models.MessageCycleReset})
}

// queryArg turns a decoded JSON value into a query argument. Scalars pass
// through, whole numbers become int64, and objects or arrays are bound as
// their JSON text. Nothing is rejected here.
func queryArg(v any) any {
	switch x := v.(type) {
	case nil, string, bool:
		return x
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x)
		}
		return x
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

// parseBody decodes a JSON body. An empty body decodes as {} so absent
// fields reach the store as NULL.
func parseBody(r *http.Request, v interface{}) error {
	err := middleware.ParseJSONBody(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
