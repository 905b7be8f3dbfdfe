package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/services"
)

// maxQuestionBytes bounds the chatbot request body
const maxQuestionBytes = 64 << 10

// ChatbotController answers questions about the collected data
type ChatbotController struct {
	services *services.Services
	log      *zap.Logger
}

// NewChatbotController creates a new chatbot controller
func NewChatbotController(services *services.Services, log *zap.Logger) *ChatbotController {
	return &ChatbotController{
		services: services,
		log:      log,
	}
}

// ChatbotRequest is the body of POST /chatbot
type ChatbotRequest struct {
	Question string `json:"pergunta"`
}

// ChatbotResponse is the reply of POST /chatbot
type ChatbotResponse struct {
	Answer string `json:"resposta"`
}

// Ask handles POST /chatbot
func (c *ChatbotController) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatbotRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQuestionBytes)).Decode(&req); err != nil {
		c.log.Debug("invalid chatbot request", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	answer := c.services.Chatbot.Answer(req.Question)
	writeJSON(w, http.StatusOK, ChatbotResponse{Answer: answer.Text})
}
