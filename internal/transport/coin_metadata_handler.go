package transport

import (
	"errors"
	"fmt"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

const maxTypeList = 200

// CoinMetadataHandler serves GET /api/v1/coin-metadata?network=&type_list=a,b,c.
type CoinMetadataHandler struct {
	source MetadataSource
	logger *zap.Logger
}

func NewCoinMetadataHandler(source MetadataSource, logger *zap.Logger) (*CoinMetadataHandler, error) {
	if source == nil {
		return nil, errors.New("metadata source is required")
	}
	return &CoinMetadataHandler{
		source: source,
		logger: logger.Named("coinMetadataHandler"),
	}, nil
}

func (h *CoinMetadataHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/api/v1/coin-metadata", h.CoinMetadata); err != nil {
		return fmt.Errorf("register /api/v1/coin-metadata: %w", err)
	}
	return nil
}

// CoinMetadata returns the known entries in type_list order. Unknown types are omitted.
func (h *CoinMetadataHandler) CoinMetadata(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q := r.URL.Query()
	network, err := parseNetwork(q.Get("network"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	types := splitTypeList(q.Get("type_list"))
	if len(types) == 0 {
		writeError(w, h.logger, http.StatusBadRequest, errors.New("type_list is required"))
		return
	}
	if len(types) > maxTypeList {
		writeError(w, h.logger, http.StatusBadRequest, fmt.Errorf("at most %d types per call", maxTypeList))
		return
	}

	found, err := h.source.FetchMany(r.Context(), network, types)
	if err != nil {
		h.logger.Error("failed to read coin metadata",
			zap.String("network", string(network)),
			zap.Int("types", len(types)),
			zap.Error(err),
		)
		writeError(w, h.logger, http.StatusInternalServerError, errors.New("coin metadata unavailable"))
		return
	}

	items := make([]model.CoinMetadata, 0, len(found))
	seen := make(map[string]struct{}, len(types))
	for _, t := range types {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if item, ok := found[t]; ok {
			items = append(items, item)
		}
	}
	writeJSON(w, h.logger, http.StatusOK, items)
}
