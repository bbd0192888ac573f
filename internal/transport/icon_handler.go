package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/icon"
	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

const (
	maxBatchRequests = 200
	maxBatchBody     = 1 << 20
)

// IconHandler serves icon resolution for single tokens and token lists.
type IconHandler struct {
	icons  IconService
	prober icon.ImageProber
	logger *zap.Logger
}

type iconsRequest struct {
	Requests []model.TokenRequest `json:"requests"`
	Hints    model.Hints          `json:"hints"`
}

type iconsResponse struct {
	Icons []model.View `json:"icons"`
}

// NewIconHandler returns an IconHandler. A nil prober disables ?probe=true.
func NewIconHandler(icons IconService, prober icon.ImageProber, logger *zap.Logger) (*IconHandler, error) {
	if icons == nil {
		return nil, errors.New("icon service is required")
	}
	return &IconHandler{
		icons:  icons,
		prober: prober,
		logger: logger.Named("iconHandler"),
	}, nil
}

// Register mounts GET /v1/icon and POST /v1/icons.
func (h *IconHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/icon", h.Icon); err != nil {
		return fmt.Errorf("register /v1/icon: %w", err)
	}
	if err := mux.HandlePath(http.MethodPost, "/v1/icons", h.Icons); err != nil {
		return fmt.Errorf("register /v1/icons: %w", err)
	}
	return nil
}

// Icon resolves one token. With probe=true the chosen image is fetched and the
// load state reflects the outcome.
func (h *IconHandler) Icon(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q := r.URL.Query()
	req, err := parseTokenRequest(q)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	hints, err := parseHints(q)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	probe, err := parseBool(q, "probe")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if probe && h.prober == nil {
		writeError(w, h.logger, http.StatusBadRequest, errors.New("probing is disabled"))
		return
	}

	var view model.View
	if probe {
		view, err = h.icons.Probe(r.Context(), req, hints, h.prober)
	} else {
		view, err = h.icons.Describe(r.Context(), req, hints)
	}
	if err != nil {
		h.logger.Debug("icon resolution abandoned", zap.Error(err))
		writeError(w, h.logger, statusOf(err), err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

// Icons resolves a list of tokens, keeping request order.
func (h *IconHandler) Icons(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var body iconsRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBatchBody)).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	if len(body.Requests) > maxBatchRequests {
		writeError(w, h.logger, http.StatusBadRequest, fmt.Errorf("at most %d requests per call", maxBatchRequests))
		return
	}
	for i := range body.Requests {
		network, err := parseNetwork(string(body.Requests[i].Network))
		if err != nil {
			writeError(w, h.logger, http.StatusBadRequest, fmt.Errorf("requests[%d]: %w", i, err))
			return
		}
		body.Requests[i].Network = network
	}

	views, err := h.icons.ResolveMany(r.Context(), body.Requests, body.Hints)
	if err != nil {
		h.logger.Debug("batch resolution abandoned", zap.Int("requests", len(body.Requests)), zap.Error(err))
		writeError(w, h.logger, statusOf(err), err)
		return
	}
	if views == nil {
		views = []model.View{}
	}
	writeJSON(w, h.logger, http.StatusOK, iconsResponse{Icons: views})
}
