package handlers

import (
	"encoding/json"
	"net/http"

	appwhatsapp "buscacliente/internal/app/whatsapp"
	"buscacliente/platform/logger"
)

// WhatsAppHandler implementa handlers REST da integração com o WhatsApp
type WhatsAppHandler struct {
	useCase appwhatsapp.UseCase
	logger  *logger.Logger
}

// NewWhatsAppHandler cria nova instância do handler do WhatsApp
func NewWhatsAppHandler(useCase appwhatsapp.UseCase, log *logger.Logger) *WhatsAppHandler {
	return &WhatsAppHandler{
		useCase: useCase,
		logger:  log.WithModule("http.whatsapp"),
	}
}

// Connect registra a conexão com o WhatsApp
// @Summary Connect WhatsApp
// @Description Store the connected status for the given credentials. Missing fields return 400 without writing.
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Param request body whatsapp.ConnectRequest true "WhatsApp credentials"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /api/whatsapp/connect [post]
func (h *WhatsAppHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req appwhatsapp.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	status, err := h.useCase.Connect(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, status, "WhatsApp connected successfully")
}

// Disconnect registra a desconexão do WhatsApp
// @Summary Disconnect WhatsApp
// @Description Store the disconnected status
// @Tags WhatsApp
// @Produce json
// @Success 200 {object} common.SuccessResponse
// @Router /api/whatsapp/disconnect [post]
func (h *WhatsAppHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	status, err := h.useCase.Disconnect(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, status, "WhatsApp disconnected successfully")
}

// Status retorna o status de conexão armazenado
// @Summary WhatsApp connection status
// @Description Read the stored connection status; defaults to disconnected when nothing was stored
// @Tags WhatsApp
// @Produce json
// @Success 200 {object} common.SuccessResponse
// @Router /api/whatsapp/status [get]
func (h *WhatsAppHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.useCase.Status(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, status)
}

// QR retorna o QR code de pareamento
// @Summary WhatsApp pairing QR code
// @Description Generate a pairing QR code from the stored token
// @Tags WhatsApp
// @Produce json
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /api/whatsapp/qr [get]
func (h *WhatsAppHandler) QR(w http.ResponseWriter, r *http.Request) {
	qr, err := h.useCase.PairingQR(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, qr)
}
