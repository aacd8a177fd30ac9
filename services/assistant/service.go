package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chcrent/models"
	"chcrent/services/booking"
	"chcrent/utils"

	"go.uber.org/zap"
)

// snapshotTTL is the refresh cadence for the cached catalog snapshot handed
// to the resolver.
const snapshotTTL = 30 * time.Second

// ProcessUserInput resolves one utterance against the user's center catalog
// and, for booking intents, places the order through the booking engine with
// mode voice-bot. Failures on this path degrade to chat replies.
func (s *DefaultAssistantService) ProcessUserInput(ctx context.Context, userID string, req models.AssistantRequest) (*models.AssistantResponse, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("assistant: load user: %w", err)
	}

	snapshot, err := s.catalogSnapshot(ctx, user.CenterID)
	if err != nil {
		utils.GetLogger().Warn("assistant catalog load failed", zap.Error(err))
		return &models.AssistantResponse{
			Intent: "chat",
			Reply:  "I couldn't load the equipment list right now. Please try again in a moment.",
		}, nil
	}

	in := s.resolve(ctx, req.Text, snapshot)
	if !in.book {
		return &models.AssistantResponse{Intent: "chat", Reply: in.reply}, nil
	}

	receipt, err := s.BookingSvc.PlaceBooking(ctx, models.BookingRequest{
		UserID:      user.ID,
		UserName:    user.Name,
		ChcID:       user.CenterID,
		EquipmentID: in.equipmentID,
		Hours:       in.hours,
		Mode:        models.ModeVoiceBot,
	})
	if err != nil {
		// Booking failures stay conversational.
		return &models.AssistantResponse{Intent: "book", Reply: booking.MessageOf(err)}, nil
	}

	return &models.AssistantResponse{
		Intent:  "book",
		Reply:   receipt.Message,
		Booked:  true,
		OrderID: receipt.OrderID,
	}, nil
}

// Greeting builds the assistant's opening message with the current
// equipment count and a concrete example command.
func (s *DefaultAssistantService) Greeting(ctx context.Context, userID string) (*models.AssistantResponse, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("assistant: load user: %w", err)
	}

	snapshot, err := s.catalogSnapshot(ctx, user.CenterID)
	if err != nil {
		return &models.AssistantResponse{
			Intent: "chat",
			Reply:  fmt.Sprintf("Welcome %s! I am your assistant. I couldn't load the equipment list yet, please try again shortly.", user.Name),
		}, nil
	}

	example := "equipment"
	if len(snapshot) > 0 {
		example = snapshot[0].Name
	}
	return &models.AssistantResponse{
		Intent: "chat",
		Reply: fmt.Sprintf("Welcome %s! I am your AI assistant. I found %d equipment items available. Try asking \"What is available?\" or \"Book %s for 3 hours\".",
			user.Name, len(snapshot), example),
	}, nil
}

// catalogSnapshot fetches the reduced catalog view for a center, serving a
// short-lived cached copy when available. The snapshot is always passed
// explicitly into the resolver; there is no shared mutable catalog state.
func (s *DefaultAssistantService) catalogSnapshot(ctx context.Context, chcID string) ([]models.EquipmentOption, error) {
	key := "catalog:" + chcID

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached []models.EquipmentOption
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	snapshot, err := s.Catalog.OptionsByCenter(chcID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(snapshot); err == nil {
			if err := s.Cache.Set(ctx, key, raw, snapshotTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache catalog snapshot", zap.Error(err))
			}
		}
	}
	return snapshot, nil
}
