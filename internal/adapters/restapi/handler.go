package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/internal/logger"
	"near_account_lookup/pkg/nearlookup"
)

// maxRequestBody caps the size of hover, links and scan documents (1 MB).
const maxRequestBody = 1 << 20

// HTTPHandler handles incoming HTTP requests for the lookup API.
type HTTPHandler struct {
	lookupService nearlookup.Lookup
	logger        logger.AppLogger
}

// NewHTTPHandler creates a new handler with the necessary service dependency.
func NewHTTPHandler(lookupService nearlookup.Lookup, appLogger logger.AppLogger) (*HTTPHandler, error) {
	if lookupService == nil {
		return nil, errors.New("lookupService cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	return &HTTPHandler{
		lookupService: lookupService,
		logger:        appLogger,
	}, nil
}

// HandleGetAccount handles requests to GET /accounts/{accountId}
func (h *HTTPHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	if r.Method != http.MethodGet {
		requestLogger.Warn("Method not allowed for GetAccount")
		respondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}

	accountID := r.PathValue("accountId")
	requestLogger = requestLogger.With("accountId", accountID)

	report, err := h.lookupService.Lookup(r.Context(), accountID)
	if err != nil {
		code, message := statusForLookupError(err)
		if code >= http.StatusInternalServerError {
			requestLogger.Error("Lookup failed", "error", err)
		} else {
			requestLogger.Warn("Lookup rejected", "error", err)
		}
		respondWithError(w, r, code, message, requestLogger)
		return
	}

	requestLogger.Info("Account looked up successfully")
	respondWithJSON(w, http.StatusOK, report, requestLogger)
}

// HandleHover handles requests to POST /hover
func (h *HTTPHandler) HandleHover(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	var req nearlookup.HoverRequestDTO
	if !h.decodePost(w, r, &req, requestLogger) {
		return
	}

	report, ok := h.lookupService.Hover(r.Context(), req.Text, req.Offset)
	if !ok {
		requestLogger.Debug("Nothing to show for hover", "offset", req.Offset)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondWithJSON(w, http.StatusOK, report, requestLogger)
}

// HandleLinks handles requests to POST /links
func (h *HTTPHandler) HandleLinks(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	var req nearlookup.LinksRequestDTO
	if !h.decodePost(w, r, &req, requestLogger) {
		return
	}

	links, err := h.lookupService.Links(r.Context(), req.Text)
	if err != nil {
		requestLogger.Error("Error listing links", "error", err)
		respondWithError(w, r, http.StatusInternalServerError, "Failed to resolve network", requestLogger)
		return
	}

	requestLogger.Info("Links listed", "count", len(links))
	respondWithJSON(w, http.StatusOK, links, requestLogger)
}

// HandleScan handles requests to POST /scan
func (h *HTTPHandler) HandleScan(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	var req nearlookup.LinksRequestDTO
	if !h.decodePost(w, r, &req, requestLogger) {
		return
	}

	results, err := h.lookupService.Scan(r.Context(), req.Text)
	if err != nil {
		code, message := statusForLookupError(err)
		requestLogger.Error("Error scanning document", "error", err)
		respondWithError(w, r, code, message, requestLogger)
		return
	}

	requestLogger.Info("Document scanned", "distinctAccounts", len(results))
	respondWithJSON(w, http.StatusOK, results, requestLogger)
}

// HandleGetNetwork handles requests to GET /network
func (h *HTTPHandler) HandleGetNetwork(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.requestLogger(r)

	if r.Method != http.MethodGet {
		requestLogger.Warn("Method not allowed for GetNetwork")
		respondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}

	info, err := h.lookupService.Network(r.Context())
	if err != nil {
		requestLogger.Error("Error resolving network", "error", err)
		respondWithError(w, r, http.StatusInternalServerError, "Failed to resolve network", requestLogger)
		return
	}
	respondWithJSON(w, http.StatusOK, info, requestLogger)
}

func (h *HTTPHandler) requestLogger(r *http.Request) logger.AppLogger {
	return h.logger.With("method", r.Method, "path", r.URL.Path, "requestId", RequestIDFromContext(r.Context()))
}

// decodePost enforces POST and decodes a bounded JSON body into dst. It writes the error response itself.
func (h *HTTPHandler) decodePost(w http.ResponseWriter, r *http.Request, dst any, l logger.AppLogger) bool {
	if r.Method != http.MethodPost {
		l.Warn("Method not allowed", "path", r.URL.Path)
		respondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", l)
		return false
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			l.Warn("Failed to close request body", "error", err)
		}
	}()

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(dst); err != nil {
		l.Warn("Invalid request body", "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondWithError(w, r, http.StatusRequestEntityTooLarge, "Request body too large", l)
			return false
		}
		respondWithError(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error(), l)
		return false
	}
	return true
}

// statusForLookupError maps the lookup error taxonomy onto HTTP status codes.
func statusForLookupError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAccountID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusUnprocessableEntity, "Upstream returned an unparseable balance"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Upstream request timed out"
	case errors.Is(err, domain.ErrRPCApplication):
		var rpcErr *domain.RPCError
		if errors.As(err, &rpcErr) && rpcErr.Message != "" {
			return http.StatusBadGateway, "NEAR RPC error: " + rpcErr.Message
		}
		return http.StatusBadGateway, "NEAR RPC error"
	case errors.Is(err, domain.ErrRPCTransport):
		return http.StatusBadGateway, "NEAR RPC unreachable"
	default:
		return http.StatusInternalServerError, "Failed to look up account"
	}
}

// respondWithError logs a warning and sends a JSON error response with the given code and message.
func respondWithError(w http.ResponseWriter, r *http.Request, code int, message string, l logger.AppLogger) {
	l.Warn("Responding with error", "http_code", code, "message", message)
	respondWithJSON(w, code, ErrorResponse{Error: message, RequestID: RequestIDFromContext(r.Context())}, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload any, l logger.AppLogger) {
	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("!!! Critical: Error marshaling JSON response !!!",
			"error", err.Error(),
			"payload_type", fmt.Sprintf("%T", payload),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	n, writeErr := w.Write(response)
	if writeErr != nil {
		l.Error("Error writing response body", "error", writeErr, "bytes_written", n)
	}
}
