package handlers

import (
	"fmt"
	"log"
	"net/http"

	response "insurance_xpto/internal/adapter/http/dto/response"
	"insurance_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves rendered policy documents and payment receipts and
// archives them on request.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) DownloadPolicyDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.usecase.GeneratePolicyDocument(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[document][handler] policy render failed policy_id=%d err=%v", id, err)
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

func (h *DocumentHandler) DownloadPaymentReceipt(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.usecase.GeneratePaymentReceipt(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[document][handler] receipt render failed payment_id=%d err=%v", id, err)
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

func (h *DocumentHandler) ArchivePolicyDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.usecase.ArchivePolicyDocument(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[document][handler] policy archive failed policy_id=%d err=%v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func (h *DocumentHandler) ArchivePaymentReceipt(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.usecase.ArchivePaymentReceipt(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[document][handler] receipt archive failed payment_id=%d err=%v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	docs, err := h.usecase.ListByPolicyID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

func sendDocument(c *gin.Context, doc usecase.RenderedDocument) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
