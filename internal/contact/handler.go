package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Template names rendered by the form handlers.
const (
	FormTemplate    = "contact-form.html"
	SuccessTemplate = "contact-success.html"
)

// FormState is the data behind the contact form fragment.
type FormState struct {
	Submission
	Error string
}

// Handler serves the JSON endpoint and the HTML form fragments.
type Handler struct {
	receiver Receiver
}

// NewHandler creates a Handler backed by r.
func NewHandler(r Receiver) *Handler {
	return &Handler{receiver: r}
}

// Register mounts the contact routes on rg.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.POST("/api/contact", h.Submit)
	rg.GET("/contact-form", h.Form)
	rg.POST("/contact", h.SubmitForm)
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		log.Printf("Error reading contact form submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgFailed})
		return
	}
	if !isObject(data) {
		log.Printf("Error processing contact form submission: body is not a JSON object")
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgFailed})
		return
	}

	var sub Submission
	if err := binding.JSON.BindBody(data, &sub); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": MsgMissingField})
			return
		}
		log.Printf("Error processing contact form submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgFailed})
		return
	}

	msg, err := h.receiver.Receive(c.Request.Context(), sub)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": MsgMissingField})
			return
		}
		log.Printf("Error processing contact form submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// isObject reports whether data is exactly one JSON object.
func isObject(data []byte) bool {
	return json.Valid(data) && bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}

// Form handles GET /contact-form and returns an empty form.
func (h *Handler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, FormTemplate, FormState{})
}

// SubmitForm handles POST /contact from the page. Failures re-render the
// form with the entered values so the visitor can resubmit.
func (h *Handler) SubmitForm(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBind(&sub); err != nil {
		var verrs validator.ValidationErrors
		state := FormState{Submission: sub, Error: MsgSendFailed}
		if errors.As(err, &verrs) {
			state.Error = MsgMissingField
		} else {
			log.Printf("Error reading contact form: %v", err)
		}
		c.HTML(http.StatusOK, FormTemplate, state)
		return
	}

	msg, err := h.receiver.Receive(c.Request.Context(), sub)
	if err != nil {
		state := FormState{Submission: sub, Error: MsgSendFailed}
		if errors.Is(err, ErrMissingField) {
			state.Error = MsgMissingField
		} else {
			log.Printf("Error sending contact form: %v", err)
		}
		c.HTML(http.StatusOK, FormTemplate, state)
		return
	}

	c.HTML(http.StatusOK, SuccessTemplate, gin.H{"message": msg})
}
