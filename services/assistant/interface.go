package assistant

import (
	"context"

	equipmentRepo "chcrent/database/repository/equipment"
	userRepo "chcrent/database/repository/user"
	"chcrent/models"
	"chcrent/services/booking"

	"github.com/go-redis/redis/v8"
)

// BookingCall is a parsed createOrder function call emitted by the model.
type BookingCall struct {
	EquipmentName string
	BookingHrs    int
}

// ModelReply is the reduced shape of a language-model response: either a
// function call, free text, or neither (unclear).
type ModelReply struct {
	Call *BookingCall
	Text string
}

// ModelClient abstracts the function-calling language model.
type ModelClient interface {
	RequestIntent(ctx context.Context, systemPrompt, utterance string) (*ModelReply, error)
}

// AssistantService turns free-text user input into either a placed booking
// or a conversational reply. Every failure mode on this path degrades to a
// chat message so the dialogue continues.
type AssistantService interface {
	ProcessUserInput(ctx context.Context, userID string, req models.AssistantRequest) (*models.AssistantResponse, error)
	Greeting(ctx context.Context, userID string) (*models.AssistantResponse, error)
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	Model      ModelClient
	Catalog    equipmentRepo.EquipmentRepository
	Users      userRepo.UserRepository
	BookingSvc booking.BookingService
	Cache      *redis.Client // optional catalog-snapshot cache
}
