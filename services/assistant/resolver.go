package assistant

import (
	"context"
	"fmt"
	"strings"

	"chcrent/models"
	"chcrent/services/booking"
	"chcrent/utils"

	"go.uber.org/zap"
)

// intent is the resolved meaning of one utterance: either a booking to
// place or a reply to show.
type intent struct {
	book          bool
	equipmentID   string
	equipmentName string
	hours         int
	reply         string
}

func respond(reply string) intent {
	return intent{reply: reply}
}

// buildSystemPrompt enumerates the center's catalog as grounding context.
func buildSystemPrompt(snapshot []models.EquipmentOption) string {
	var b strings.Builder
	b.WriteString("You are an expert CHC Equipment Booking Assistant.\n\nAvailable Equipment:\n")
	for i, e := range snapshot {
		fmt.Fprintf(&b, "%d. %s - ₹%d/hr\n", i+1, e.Name, e.Rent)
	}
	b.WriteString("\nInstructions:\n")
	b.WriteString("1. If the user explicitly asks to book or rent equipment with a specific duration, call createOrder with the exact equipment name and bookingHrs.\n")
	b.WriteString("2. If asking for suggestions, availability, or general info, respond conversationally WITHOUT calling the function.\n")
	b.WriteString("3. Be friendly, concise, and helpful.\n")
	return b.String()
}

// resolve turns an utterance into an intent. It must stay airtight
// regardless of model behavior: an unvalidated booking never escapes, and
// neither does a model transport error.
func (s *DefaultAssistantService) resolve(ctx context.Context, utterance string, snapshot []models.EquipmentOption) intent {
	if len(snapshot) == 0 {
		return respond("I'm still loading the equipment list. Please wait a moment and try again.")
	}

	reply, err := s.Model.RequestIntent(ctx, buildSystemPrompt(snapshot), utterance)
	if err != nil {
		utils.GetLogger().Warn("assistant model request failed", zap.Error(err))
		return respond("I couldn't reach the assistant service. Please check your connection and try again.")
	}

	if reply.Call != nil {
		match := matchEquipment(snapshot, reply.Call.EquipmentName)
		if match == nil {
			return respond(fmt.Sprintf("I couldn't find equipment named %q. Please check the available equipment list.", reply.Call.EquipmentName))
		}
		if reply.Call.BookingHrs < booking.MinBookingHours || reply.Call.BookingHrs > booking.MaxBookingHours {
			return respond(fmt.Sprintf("How many hours would you like to book %s for? Please pick between %d and %d.",
				match.Name, booking.MinBookingHours, booking.MaxBookingHours))
		}
		return intent{
			book:          true,
			equipmentID:   match.ID,
			equipmentName: match.Name,
			hours:         reply.Call.BookingHrs,
		}
	}

	if reply.Text != "" {
		return respond(reply.Text)
	}

	return respond("I received an unclear response. Please try rephrasing your request.")
}

// matchEquipment resolves a model-supplied name to a catalog entry by
// case-insensitive exact match. No fuzzy guessing.
func matchEquipment(snapshot []models.EquipmentOption, name string) *models.EquipmentOption {
	for i := range snapshot {
		if strings.EqualFold(snapshot[i].Name, strings.TrimSpace(name)) {
			return &snapshot[i]
		}
	}
	return nil
}
