package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/security"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

const supplierName = "AgroVet Supplies"

// ChatService runs the farmer-to-supplier chat and the farm visit log.
// Supplier replies are canned, keyed on what the farmer asked about.
type ChatService struct {
	chat     store.ChatStore
	progress store.ProgressStore
	clock    clockwork.Clock
	locks    *UserLocks
}

func NewChatService(chat store.ChatStore, progress store.ProgressStore, clock clockwork.Clock, locks *UserLocks) *ChatService {
	return &ChatService{chat: chat, progress: progress, clock: clock, locks: locks}
}

// SendMessage appends the farmer's message and the supplier's auto-reply,
// returning both in order.
func (s *ChatService) SendMessage(farmerID, senderName, body string) ([]models.ChatMessage, error) {
	body = security.SanitizeUserText(body)
	if body == "" {
		return nil, errors.New(errors.ErrCodeValidation, "message body must not be empty")
	}
	if senderName == "" {
		senderName = farmerID
	}

	unlock := s.locks.Lock(farmerID)
	defer unlock()

	now := s.clock.Now()
	farmerMsg := models.ChatMessage{
		MessageID: uuid.NewString(),
		FarmerID:  farmerID,
		Sender:    security.SanitizeUserText(senderName),
		Role:      models.RoleFarmer,
		Body:      body,
		CreatedAt: now,
	}
	if err := s.chat.AppendMessage(&farmerMsg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to save message")
	}

	reply := models.ChatMessage{
		MessageID: uuid.NewString(),
		FarmerID:  farmerID,
		Sender:    supplierName,
		Role:      models.RoleSupplier,
		Body:      supplierReply(body),
		CreatedAt: now.Add(1), // keep reply strictly after the question
	}
	if err := s.chat.AppendMessage(&reply); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to save reply")
	}

	return []models.ChatMessage{farmerMsg, reply}, nil
}

// History returns the farmer's chat log, oldest first.
func (s *ChatService) History(farmerID string) ([]models.ChatMessage, error) {
	msgs, err := s.chat.ListMessages(farmerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list messages")
	}
	return msgs, nil
}

func supplierReply(body string) string {
	lowered := strings.ToLower(body)
	switch {
	case strings.Contains(lowered, "feed"):
		return "We have layer feed, broiler starter and pig grower in stock. Standard delivery to your village is 2 days. How many kg do you need?"
	case strings.Contains(lowered, "medicine") || strings.Contains(lowered, "vaccine"):
		return "Vaccines and common medicines are available. For prescription items please share your vet's note and we will dispatch the same day."
	case strings.Contains(lowered, "price") || strings.Contains(lowered, "cost"):
		return "Current rates: layer feed Rs 32/kg, broiler starter Rs 38/kg, pig grower Rs 29/kg. Bulk orders above 500kg get 5% off."
	case strings.Contains(lowered, "delivery"):
		return "Deliveries go out every Tuesday and Friday. Orders placed before 6pm the previous day make the next run."
	default:
		return "Thanks for reaching out. A supplier representative will get back to you shortly. For urgent orders call our helpline."
	}
}

// VisitRecord is what a completed farm visit reports back.
type VisitRecord struct {
	FarmerID   string `json:"farmer_id"`
	VisitCount int64  `json:"visit_count"`
	VisitedAt  string `json:"visited_at"`
}

// AddVisit logs one farm visit against the farmer's progress counter.
func (s *ChatService) AddVisit(farmerID string) (*VisitRecord, error) {
	unlock := s.locks.Lock(farmerID)
	defer unlock()

	prog, err := s.progress.GetProgress(farmerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load progress")
	}
	if prog == nil {
		prog = models.NewFarmerProgress(farmerID)
	}
	prog.VisitCount++
	if err := s.progress.SaveProgress(prog); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to save progress")
	}

	return &VisitRecord{
		FarmerID:   farmerID,
		VisitCount: prog.VisitCount,
		VisitedAt:  s.clock.Now().Format(models.DateLayout),
	}, nil
}

// VisitQR renders a PNG QR code that encodes the farmer's visit check-in
// payload, for printing at the farm gate.
func (s *ChatService) VisitQR(farmerID string) ([]byte, error) {
	payload := fmt.Sprintf("digifarm://visit/%s", farmerID)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to render QR code")
	}
	return png, nil
}
